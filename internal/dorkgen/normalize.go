package dorkgen

import (
	"dorker/pkg/serrors"
	"strings"
)

// NormalizeDomain returns the value passed to the site: operator. Surrounding
// whitespace is trimmed and everything else is kept as typed, so
// site:<domain> always carries the user's input. Only an empty domain is
// rejected.
func NormalizeDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", serrors.With(serrors.ErrBadRequest, "domain is required")
	}

	return s, nil
}
