// Package report renders catalogs, generated dorks and saved dorks for the
// command line client. Text output is colored with a palette that follows
// the dark-mode preference; JSON and Markdown are meant for piping and
// sharing.
package report
