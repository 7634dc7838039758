// Package domain contains the core domain entities and types used by the
// application: dork requests, generated dorks, saved dorks and the category
// catalog. These types are intentionally free of infrastructure concerns so
// they can be shared across the API, storage and client packages.
package domain
