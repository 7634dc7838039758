// Package dorkgen builds search engine dork queries. It owns the fixed
// category catalog and the rules that turn a DorkRequest into a query string
// and a search URL.
package dorkgen
