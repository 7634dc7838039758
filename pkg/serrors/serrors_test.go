package serrors_test

import (
	"dorker/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "dork %d not found", 42)
	require.Equal(t, "dork 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting dork")
	require.Equal(t, "getting dork: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "plain error", err: errors.New("boom"), want: serrors.ErrInternal},
		{name: "bare kind", err: serrors.ErrNotFound, want: serrors.ErrNotFound},
		{name: "semantic error", err: serrors.With(serrors.ErrBadRequest, "name is required"), want: serrors.ErrBadRequest},
		{
			name: "wrapped semantic error",
			err:  fmt.Errorf("could not delete dork: %w", serrors.KindOnly(serrors.ErrNotFound)),
			want: serrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestKindFromCode(t *testing.T) {
	require.Equal(t, serrors.ErrNotFound, serrors.KindFromCode("NOT_FOUND"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindFromCode(serrors.ErrBadRequest.Error()))
	require.Equal(t, serrors.ErrInternal, serrors.KindFromCode("SOMETHING_ELSE"))
	require.Equal(t, serrors.ErrInternal, serrors.KindFromCode(""))
}

func TestKindStatus(t *testing.T) {
	tests := map[serrors.Kind]int{
		serrors.ErrBadRequest:   http.StatusBadRequest,
		serrors.ErrNotFound:     http.StatusNotFound,
		serrors.ErrConflict:     http.StatusConflict,
		serrors.ErrInternal:     http.StatusInternalServerError,
		serrors.ErrUnavailable:  http.StatusServiceUnavailable,
		serrors.ErrTimeout:      http.StatusGatewayTimeout,
		serrors.ErrRateLimited:  http.StatusTooManyRequests,
		serrors.ErrUnauthorized: http.StatusUnauthorized,
		serrors.ErrForbidden:    http.StatusForbidden,
	}
	for k, want := range tests {
		require.Equal(t, want, k.Status(), k.Error())
		require.NotEmpty(t, k.DefaultMessage(), k.Error())
	}

	custom := serrors.NewKind("GONE", http.StatusGone, "gone")
	require.Equal(t, http.StatusGone, serrors.KindOf(serrors.KindOnly(custom)).Status())
	require.Equal(t, serrors.ErrInternal, serrors.KindFromCode("GONE"))
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "dork not found",
		serrors.MessageOf(fmt.Errorf("deleting: %w", serrors.With(serrors.ErrNotFound, "dork not found"))))
	require.Equal(t, "resource not found", serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, "resource not found", serrors.MessageOf(serrors.ErrNotFound))
	require.Equal(t, "internal error", serrors.MessageOf(errors.New("boom")))
}
