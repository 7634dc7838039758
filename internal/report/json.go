package report

import (
	"dorker/pkg/domain"
	"encoding/json"
	"io"
)

// JSONWriter outputs pretty-printed JSON, one document per call. The shapes
// match the API responses.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

func (w *JSONWriter) WriteCategories(catalog domain.CategoryCatalog) error {
	return w.writeJSON(catalog)
}

func (w *JSONWriter) WriteGenerated(dork *domain.GeneratedDork) error {
	return w.writeJSON(dork)
}

func (w *JSONWriter) WriteDorks(dorks []domain.SavedDork) error {
	if dorks == nil {
		dorks = []domain.SavedDork{}
	}
	return w.writeJSON(dorks)
}

func (w *JSONWriter) WriteLoaded(loaded LoadedDork) error {
	return w.writeJSON(loaded)
}

func (w *JSONWriter) writeJSON(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}
