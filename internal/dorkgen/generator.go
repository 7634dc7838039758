package dorkgen

import (
	"context"
	"dorker/internal/config"
	"dorker/pkg/domain"
	"dorker/pkg/logger"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// DefaultSearchURL is used when no search base URL is configured.
const DefaultSearchURL = "https://www.google.com/search"

// Options configure how generated queries are turned into search links.
type Options struct {
	// SearchURL is the web search endpoint the query is appended to as q.
	SearchURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SearchURL: cfg.Search.BaseURL,
	}
}

// generator is the concrete implementation of the Generator interface. It is
// stateless apart from its options and safe for concurrent use.
type generator struct {
	options Options
}

// Categories returns a fresh copy of the token catalog.
func (g generator) Categories() domain.CategoryCatalog {
	return Catalog()
}

// Generate assembles a dork query for req and the matching search URL.
//
// The query starts with site:<domain>, followed by the trimmed non-empty
// keywords in their given order and then by the expansion of every selected
// token, category by category. A token selected twice within a category is
// emitted once. Unknown tokens are skipped.
func (g generator) Generate(ctx context.Context, req domain.DorkRequest) (*domain.GeneratedDork, error) {
	site, err := NormalizeDomain(req.Domain)
	if err != nil {
		return nil, err
	}

	parts := []string{"site:" + site}
	for _, kw := range req.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			parts = append(parts, kw)
		}
	}

	for _, c := range domain.Categories {
		seen := make(map[string]struct{})
		for _, name := range req.Selected(c) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			expansion, ok := Expand(c, name)
			if !ok {
				logger.Debug(ctx, "skipping unknown token",
					zap.String("category", string(c)), zap.String("token", name))
				continue
			}
			parts = append(parts, expansion)
		}
	}

	query := strings.Join(parts, " ")

	return &domain.GeneratedDork{
		Query: query,
		URL:   SearchURL(g.options.SearchURL, query),
	}, nil
}

// SearchURL builds the web search link for query. An empty base falls back to
// DefaultSearchURL.
func SearchURL(base, query string) string {
	if base == "" {
		base = DefaultSearchURL
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	return base + sep + "q=" + url.QueryEscape(query)
}

// New creates a Generator with the given options.
func New(options Options) Generator {
	return generator{
		options: options,
	}
}
