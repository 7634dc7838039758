package dorkgen_test

import (
	"dorker/internal/dorkgen"
	"dorker/pkg/serrors"
	"errors"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "plain", in: "example.com", out: "example.com", ok: true},
		{name: "surrounding whitespace is trimmed", in: " \tExample.com \n", out: "Example.com", ok: true},
		{name: "case is kept", in: "Example.COM", out: "Example.COM", ok: true},
		{name: "scheme and path are kept", in: "https://example.com/Blog/", out: "https://example.com/Blog/", ok: true},
		{name: "inner whitespace is kept", in: "exa mple.com", out: "exa mple.com", ok: true},
		{name: "scheme only is not empty", in: "https://", out: "https://", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "whitespace only", in: "   ", ok: false},
	}

	for _, tc := range cases {
		got, err := dorkgen.NormalizeDomain(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got != tc.out {
				t.Fatalf("%s: got %q, want %q", tc.name, got, tc.out)
			}
		} else {
			if err == nil {
				t.Fatalf("%s: expected error, got nil (out=%q)", tc.name, got)
			}
			if !errors.Is(err, serrors.ErrBadRequest) {
				t.Fatalf("%s: expected bad request, got %v", tc.name, err)
			}
		}
	}
}
