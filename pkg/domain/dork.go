package domain

import "time"

// SavedDorkID uniquely identifies a saved dork. It is assigned by the store.
type SavedDorkID int64

// DorkRequest is the input of the query builder: a target domain plus free
// keywords and the catalog tokens selected for every category.
type DorkRequest struct {
	// Domain is the target passed to the site: operator. It must not be empty.
	Domain string `json:"domain"`
	// Keywords are appended verbatim, in order.
	Keywords []string `json:"keywords"`

	FileTypes     []string `json:"fileTypes"`
	Vulnerability []string `json:"vulnerability"`
	CMS           []string `json:"cms"`
	Auth          []string `json:"auth"`
	Errors        []string `json:"errors"`
}

// Selected returns the tokens selected for the given category.
func (r DorkRequest) Selected(c Category) []string {
	switch c {
	case CategoryFileTypes:
		return r.FileTypes
	case CategoryVulnerability:
		return r.Vulnerability
	case CategoryCMS:
		return r.CMS
	case CategoryAuth:
		return r.Auth
	case CategoryErrors:
		return r.Errors
	default:
		return nil
	}
}

// GeneratedDork is the output of the query builder. It is not persisted unless
// explicitly saved.
type GeneratedDork struct {
	// Query is the assembled dork query string.
	Query string `json:"query"`
	// URL is a web search URL carrying the URL-encoded query.
	URL string `json:"url"`
}

// SavedDork is a named query string stored for later reuse. Saved dorks are
// created and deleted, never updated in place.
type SavedDork struct {
	// ID is the store-assigned identifier, stable for the record's lifetime.
	ID SavedDorkID `json:"id"`
	// Name is the user supplied label. Required.
	Name string `json:"name"`
	// Query is the opaque query text. Required.
	Query string `json:"query"`
	// Description is free text.
	Description string `json:"description"`
	// CreatedAt is the time the record was stored.
	CreatedAt time.Time `json:"createdAt"`
}
