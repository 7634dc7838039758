package dorkgen

import "dorker/pkg/domain"

// token is a selectable catalog entry and the search operators it expands to.
type token struct {
	name      string
	expansion string
}

// catalog is the fixed taxonomy served to clients. Token order is the order
// shown in the UI.
var catalog = map[domain.Category][]token{ //nolint: gochecknoglobals
	domain.CategoryFileTypes: {
		{"pdf", "filetype:pdf"},
		{"doc", "filetype:doc OR filetype:docx"},
		{"xls", "filetype:xls OR filetype:xlsx"},
		{"zip", "filetype:zip OR filetype:rar OR filetype:tar.gz"},
		{"sql", "filetype:sql"},
		{"php", "filetype:php"},
		{"asp", "filetype:asp OR filetype:aspx"},
	},
	domain.CategoryVulnerability: {
		{"directory_listing", `intitle:"index of"`},
		{"exposed_config", `intext:"config" OR intext:"configuration"`},
		{"database_exposure", `intext:"mysql" OR intext:"database"`},
		{"log_files", `filetype:log OR intext:"error log"`},
		{"backup_files", `filetype:bak OR filetype:backup OR intext:"backup"`},
	},
	domain.CategoryCMS: {
		{"wordpress", `intext:"powered by wordpress" OR intext:"wp-content"`},
		{"joomla", `intext:"powered by joomla" OR intext:"joomla"`},
		{"drupal", `intext:"powered by drupal" OR intext:"drupal"`},
		{"phpinfo", `intext:"phpinfo()" OR intext:"php version"`},
	},
	domain.CategoryAuth: {
		{"login", `intext:"login" OR intext:"sign in"`},
		{"admin", `intext:"admin" OR intext:"administrator"`},
		{"password", `intext:"password" OR intext:"passwd"`},
		{"user_list", `intext:"user" OR intext:"username"`},
	},
	domain.CategoryErrors: {
		{"sql_error", `intext:"sql error" OR intext:"mysql error"`},
		{"server_error", `intext:"server error" OR intext:"500 error"`},
		{"stack_trace", `intext:"stack trace" OR intext:"exception"`},
		{"debug_info", `intext:"debug" OR intext:"development"`},
	},
}

// Catalog returns the token names of every category. Each call builds a new
// map, so callers are free to modify the result.
func Catalog() domain.CategoryCatalog {
	out := make(domain.CategoryCatalog, len(catalog))
	for _, c := range domain.Categories {
		tokens := catalog[c]
		names := make([]string, 0, len(tokens))
		for _, t := range tokens {
			names = append(names, t.name)
		}
		out[c] = names
	}

	return out
}

// Expand returns the search operators for a token of the given category and
// whether the token exists.
func Expand(c domain.Category, name string) (string, bool) {
	for _, t := range catalog[c] {
		if t.name == name {
			return t.expansion, true
		}
	}

	return "", false
}
