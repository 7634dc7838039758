package domain

// Category names a group of selectable tokens. The values double as the JSON
// keys of the catalog and of DorkRequest.
type Category string

const (
	CategoryFileTypes     Category = "fileTypes"
	CategoryVulnerability Category = "vulnerability"
	CategoryCMS           Category = "cms"
	CategoryAuth          Category = "auth"
	CategoryErrors        Category = "errors"
)

// Categories lists every category in the order their tokens are appended to a
// generated query.
var Categories = []Category{ //nolint: gochecknoglobals
	CategoryFileTypes,
	CategoryVulnerability,
	CategoryCMS,
	CategoryAuth,
	CategoryErrors,
}

// CategoryCatalog maps every category to its ordered list of tokens.
type CategoryCatalog map[Category][]string
