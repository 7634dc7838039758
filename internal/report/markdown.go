package report

import (
	"dorker/pkg/domain"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs GitHub flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteCategories writes one section per category with its tokens as a list.
func (w *MarkdownWriter) WriteCategories(catalog domain.CategoryCatalog) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Categories")
	for _, c := range orderedCategories(catalog) {
		md.PlainText("")
		md.H2(string(c))
		md.PlainText("")
		tokens := make([]string, 0, len(catalog[c]))
		for _, token := range catalog[c] {
			tokens = append(tokens, code(token))
		}
		md.BulletList(tokens...)
	}
	md.PlainText("")

	return md.Build()
}

// WriteGenerated writes the query and a link to the search results.
func (w *MarkdownWriter) WriteGenerated(dork *domain.GeneratedDork) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Generated Dork")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Query", code(dork.Query)},
			{"URL", "<" + dork.URL + ">"},
		},
	})

	return md.Build()
}

// WriteDorks writes the saved dorks as a table.
func (w *MarkdownWriter) WriteDorks(dorks []domain.SavedDork) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Saved Dorks")
	md.PlainText("")
	if len(dorks) == 0 {
		md.PlainText("_No saved dorks._")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(dorks))
	for _, d := range dorks {
		created := ""
		if !d.CreatedAt.IsZero() {
			created = d.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			strconv.FormatInt(int64(d.ID), 10),
			cell(d.Name),
			code(d.Query),
			cell(d.Description),
			created,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Query", "Description", "Created"},
		Rows:   rows,
	})

	return md.Build()
}

// WriteLoaded writes one table holding the saved dork and its search link.
func (w *MarkdownWriter) WriteLoaded(loaded LoadedDork) error {
	d := loaded.Dork
	rows := [][]string{
		{"ID", strconv.FormatInt(int64(d.ID), 10)},
		{"Name", cell(d.Name)},
		{"Query", code(d.Query)},
		{"URL", "<" + loaded.Generated.URL + ">"},
	}
	if d.Description != "" {
		rows = append(rows, []string{"Description", cell(d.Description)})
	}
	if !d.CreatedAt.IsZero() {
		rows = append(rows, []string{"Created", d.CreatedAt.UTC().Format(time.RFC3339)})
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("Saved Dork")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows:   rows,
	})

	return md.Build()
}

// cell makes s safe inside a table cell; the library does not escape.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func code(s string) string {
	return "`" + cell(s) + "`"
}
