package report_test

import (
	"bytes"
	"dorker/internal/report"
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCatalog() domain.CategoryCatalog {
	return domain.CategoryCatalog{
		domain.CategoryErrors:    {"sql syntax"},
		domain.CategoryFileTypes: {"pdf", "sql"},
	}
}

func testDorks() []domain.SavedDork {
	return []domain.SavedDork{
		{
			ID:          7,
			Name:        "admin panel",
			Query:       "site:example.com inurl:admin",
			Description: "Domain: example.com",
			CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			ID:    9,
			Name:  "either",
			Query: "site:example.com a | b",
		},
	}
}

func testLoaded() report.LoadedDork {
	d := testDorks()[0]

	return report.LoadedDork{
		Dork: d,
		Generated: &domain.GeneratedDork{
			Query: d.Query,
			URL:   "https://www.google.com/search?q=site%3Aexample.com+inurl%3Aadmin",
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]report.Format{
		"":         report.FormatText,
		"text":     report.FormatText,
		"JSON":     report.FormatJSON,
		"markdown": report.FormatMarkdown,
		" md ":     report.FormatMarkdown,
	}
	for in, want := range tests {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xml")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrBadRequest))
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, f := range report.Formats {
		w, err := report.New(f, &bytes.Buffer{}, nil)
		require.NoError(t, err)
		require.NotNil(t, w)
	}

	_, err := report.New("xml", &bytes.Buffer{}, nil)
	require.Error(t, err)
}

func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("categories follow the canonical order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(false).SetEnabled(false))
		require.NoError(t, w.WriteCategories(testCatalog()))

		out := buf.String()
		require.Equal(t, "fileTypes\n  - pdf\n  - sql\n\nerrors\n  - sql syntax\n", out)
	})

	t.Run("generated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(true).SetEnabled(false))
		require.NoError(t, w.WriteGenerated(&domain.GeneratedDork{
			Query: "site:example.com",
			URL:   "https://www.google.com/search?q=site%3Aexample.com",
		}))

		require.Equal(t,
			"Query: site:example.com\nURL:   https://www.google.com/search?q=site%3Aexample.com\n",
			buf.String())
	})

	t.Run("dorks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(false).SetEnabled(false))
		require.NoError(t, w.WriteDorks(testDorks()))

		out := buf.String()
		require.Contains(t, out, "#7 admin panel\n  site:example.com inurl:admin\n  Domain: example.com\n")
		require.Contains(t, out, "saved 2025-01-02T03:04:05Z")
		require.Contains(t, out, "#9 either\n  site:example.com a | b\n")
	})

	t.Run("no dorks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(false).SetEnabled(false))
		require.NoError(t, w.WriteDorks(nil))
		require.Equal(t, "no saved dorks\n", buf.String())
	})

	t.Run("loaded dork", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(false).SetEnabled(false))
		require.NoError(t, w.WriteLoaded(testLoaded()))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "#7 admin panel\n  site:example.com inurl:admin\n"))
		require.True(t, strings.HasSuffix(out, "  URL: https://www.google.com/search?q=site%3Aexample.com+inurl%3Aadmin\n"))
	})

	t.Run("colors can be forced", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := report.NewTextWriter(&buf, report.NewPalette(true).SetEnabled(true))
		require.NoError(t, w.WriteDorks(nil))
		require.Contains(t, buf.String(), "\x1b[")
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("dorks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewJSONWriter(&buf).WriteDorks(testDorks()))

		var got []domain.SavedDork
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		require.Equal(t, domain.SavedDorkID(7), got[0].ID)
		require.Equal(t, "site:example.com a | b", got[1].Query)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewJSONWriter(&buf).WriteDorks(nil))
		require.Equal(t, "[]\n", buf.String())
	})

	t.Run("url is not html escaped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewJSONWriter(&buf).WriteGenerated(&domain.GeneratedDork{
			Query: "site:a.com",
			URL:   "https://s.example/search?a=1&q=site%3Aa.com",
		}))
		require.Contains(t, buf.String(), "a=1&q=")
	})

	t.Run("loaded dork is a single object", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewJSONWriter(&buf).WriteLoaded(testLoaded()))

		raw := buf.Bytes()
		dec := json.NewDecoder(bytes.NewReader(raw))
		var got report.LoadedDork
		require.NoError(t, dec.Decode(&got))
		require.False(t, dec.More(), "expected a single JSON document")
		require.Equal(t, domain.SavedDorkID(7), got.Dork.ID)
		require.Equal(t, "admin panel", got.Dork.Name)
		require.NotNil(t, got.Generated)
		require.Equal(t, "site:example.com inurl:admin", got.Generated.Query)
		require.Equal(t, "https://www.google.com/search?q=site%3Aexample.com+inurl%3Aadmin", got.Generated.URL)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &fields))
		require.Len(t, fields, 2)
		require.Contains(t, fields, "dork")
		require.Contains(t, fields, "generated")
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewJSONWriter(&buf).WriteCategories(testCatalog()))

		var got map[string][]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Equal(t, []string{"pdf", "sql"}, got["fileTypes"])
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("dorks table escapes pipes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewMarkdownWriter(&buf).WriteDorks(testDorks()))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "# Saved Dorks\n"))
		require.Contains(t, out, "| ID | Name | Query | Description | Created |")
		require.Contains(t, out, "| 7 | admin panel | `site:example.com inurl:admin` | Domain: example.com | 2025-01-02T03:04:05Z |")
		require.Contains(t, out, "| 9 | either | `site:example.com a \\| b` |  |  |")
	})

	t.Run("no dorks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewMarkdownWriter(&buf).WriteDorks(nil))
		require.Contains(t, buf.String(), "_No saved dorks._")
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewMarkdownWriter(&buf).WriteCategories(testCatalog()))

		out := buf.String()
		require.Contains(t, out, "## fileTypes\n\n- `pdf`\n- `sql`")
		require.Less(t, strings.Index(out, "## fileTypes"), strings.Index(out, "## errors"))
	})

	t.Run("generated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewMarkdownWriter(&buf).WriteGenerated(&domain.GeneratedDork{
			Query: "site:example.com",
			URL:   "https://www.google.com/search?q=site%3Aexample.com",
		}))
		require.Contains(t, buf.String(), "| URL | <https://www.google.com/search?q=site%3Aexample.com> |")
	})

	t.Run("loaded dork", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, report.NewMarkdownWriter(&buf).WriteLoaded(testLoaded()))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "# Saved Dork\n"))
		require.Equal(t, 1, strings.Count(out, "| Field | Value |"))
		require.Contains(t, out, "| Query | `site:example.com inurl:admin` |")
		require.Contains(t, out, "| URL | <https://www.google.com/search?q=site%3Aexample.com+inurl%3Aadmin> |")
		require.Contains(t, out, "| Created | 2025-01-02T03:04:05Z |")
	})
}
