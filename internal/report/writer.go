package report

import (
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"io"
	"slices"
	"strings"
)

// Format selects how a Writer renders its output.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown} //nolint: gochecknoglobals

// ParseFormat returns the Format named by s. Matching is case-insensitive and
// "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown), "md":
		return FormatMarkdown, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown output format %q", s)
	}
}

// Writer renders client results to an output stream.
type Writer interface {
	// WriteCategories renders the category catalog in category order.
	WriteCategories(catalog domain.CategoryCatalog) error
	// WriteGenerated renders a generated query and its search URL.
	WriteGenerated(dork *domain.GeneratedDork) error
	// WriteDorks renders saved dorks in the given order.
	WriteDorks(dorks []domain.SavedDork) error
	// WriteLoaded renders a saved dork together with its search link as a
	// single document.
	WriteLoaded(loaded LoadedDork) error
}

// LoadedDork is a saved dork reopened with its search URL.
type LoadedDork struct {
	Dork      domain.SavedDork      `json:"dork"`
	Generated *domain.GeneratedDork `json:"generated"`
}

// New returns the Writer for format. palette is only used by text output and
// may be nil, in which case the light palette is used.
func New(format Format, output io.Writer, palette *Palette) (Writer, error) {
	switch format {
	case FormatText, "":
		if palette == nil {
			palette = NewPalette(false)
		}
		return NewTextWriter(output, palette), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown output format %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// orderedCategories yields the catalog categories in the canonical order,
// followed by any category the catalog carries that is not known locally.
func orderedCategories(catalog domain.CategoryCatalog) []domain.Category {
	out := make([]domain.Category, 0, len(catalog))
	seen := make(map[domain.Category]bool, len(catalog))
	for _, c := range domain.Categories {
		if _, ok := catalog[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}
	var extra []domain.Category
	for c := range catalog {
		if !seen[c] {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)

	return append(out, extra...)
}
