package report

import (
	"dorker/pkg/domain"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Palette holds the colors used by TextWriter.
type Palette struct {
	Heading *color.Color
	Label   *color.Color
	Query   *color.Color
	URL     *color.Color
	Muted   *color.Color
}

// NewPalette returns the dark or the light color scheme. Colors are dropped
// automatically when the output is not a terminal or NO_COLOR is set.
func NewPalette(dark bool) *Palette {
	if dark {
		return &Palette{
			Heading: color.New(color.FgHiCyan, color.Bold),
			Label:   color.New(color.FgHiMagenta),
			Query:   color.New(color.FgHiWhite, color.Bold),
			URL:     color.New(color.FgHiBlue, color.Underline),
			Muted:   color.New(color.FgHiBlack),
		}
	}

	return &Palette{
		Heading: color.New(color.FgBlue, color.Bold),
		Label:   color.New(color.FgMagenta),
		Query:   color.New(color.FgBlack, color.Bold),
		URL:     color.New(color.FgBlue, color.Underline),
		Muted:   color.New(color.FgWhite),
	}
}

// SetEnabled forces colors on or off regardless of the terminal.
func (p *Palette) SetEnabled(enabled bool) *Palette {
	for _, c := range []*color.Color{p.Heading, p.Label, p.Query, p.URL, p.Muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// TextWriter outputs human-readable text for a terminal.
type TextWriter struct {
	baseWriter

	palette *Palette
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, palette *Palette) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
		palette:    palette,
	}
}

// WriteCategories prints every category followed by its tokens.
func (w *TextWriter) WriteCategories(catalog domain.CategoryCatalog) error {
	var b strings.Builder
	for i, c := range orderedCategories(catalog) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(w.palette.Heading.Sprint(string(c)))
		b.WriteString("\n")
		for _, token := range catalog[c] {
			fmt.Fprintf(&b, "  - %s\n", token)
		}
	}

	_, err := io.WriteString(w.output, b.String())
	return err
}

// WriteGenerated prints the query and the search URL.
func (w *TextWriter) WriteGenerated(dork *domain.GeneratedDork) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", w.palette.Label.Sprint("Query:"), w.palette.Query.Sprint(dork.Query))
	fmt.Fprintf(&b, "%s %s\n", w.palette.Label.Sprint("URL:  "), w.palette.URL.Sprint(dork.URL))

	_, err := io.WriteString(w.output, b.String())
	return err
}

// WriteLoaded prints the saved dork block followed by its search URL.
func (w *TextWriter) WriteLoaded(loaded LoadedDork) error {
	if err := w.WriteDorks([]domain.SavedDork{loaded.Dork}); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w.output, "  %s %s\n", w.palette.Label.Sprint("URL:"), w.palette.URL.Sprint(loaded.Generated.URL))
	return err
}

// WriteDorks prints one block per saved dork.
func (w *TextWriter) WriteDorks(dorks []domain.SavedDork) error {
	if len(dorks) == 0 {
		_, err := io.WriteString(w.output, w.palette.Muted.Sprint("no saved dorks")+"\n")
		return err
	}

	var b strings.Builder
	for i, d := range dorks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", w.palette.Heading.Sprintf("#%d", d.ID), w.palette.Heading.Sprint(d.Name))
		fmt.Fprintf(&b, "  %s\n", w.palette.Query.Sprint(d.Query))
		if d.Description != "" {
			fmt.Fprintf(&b, "  %s\n", d.Description)
		}
		if !d.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "  %s\n", w.palette.Muted.Sprint("saved "+d.CreatedAt.UTC().Format(time.RFC3339)))
		}
	}

	_, err := io.WriteString(w.output, b.String())
	return err
}
