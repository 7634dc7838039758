package v1handler_test

import (
	"context"
	"dorker/internal/api/handler/v1handler"
	"dorker/pkg/domain"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockdorkgen "dorker/internal/dorkgen/mock"
	mockdorks "dorker/internal/dorks/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

type tracedEnv struct {
	engine   *gin.Engine
	dorks    *mockdorks.MockService
	gen      *mockdorkgen.MockGenerator
	recorder *tracetest.SpanRecorder
}

func newTracedEnv(t *testing.T) *tracedEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	env := &tracedEnv{
		dorks:    mockdorks.NewMockService(ctrl),
		gen:      mockdorkgen.NewMockGenerator(ctrl),
		recorder: sr,
	}
	env.engine = v1handler.New(v1handler.Deps{
		Dorks:     env.dorks,
		Generator: env.gen,
		Tracer:    tp.Tracer("test"),
	}).Engine()

	return env
}

func (e *tracedEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)

	return rec
}

func (e *tracedEnv) onlySpan(t *testing.T) sdktrace.ReadOnlySpan {
	t.Helper()

	ended := e.recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestInstrument_GenerateSpan(t *testing.T) {
	env := newTracedEnv(t)
	env.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.DorkRequest) (*domain.GeneratedDork, error) {
			// handlers run inside the request span
			require.True(t, trace.SpanContextFromContext(ctx).IsValid())
			return &domain.GeneratedDork{Query: "site:example.com", URL: "https://s/?q=site%3Aexample.com"}, nil
		})

	rec := env.do(http.MethodPost, "/api/generate", `{"domain":"example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	span := env.onlySpan(t)
	require.Equal(t, "POST /api/generate", span.Name())
	require.Equal(t, trace.SpanKindServer, span.SpanKind())
	attrs := spanAttrs(span)
	require.Equal(t, "POST", attrs["http.request.method"].AsString())
	require.Equal(t, "/api/generate", attrs["http.route"].AsString())
	require.Equal(t, int64(http.StatusOK), attrs["http.response.status_code"].AsInt64())
	require.Equal(t, codes.Unset, span.Status().Code)
}

func TestInstrument_RouteTemplate(t *testing.T) {
	env := newTracedEnv(t)
	env.dorks.EXPECT().Delete(gomock.Any(), domain.SavedDorkID(42)).Return(nil)

	rec := env.do(http.MethodDelete, "/api/dorks/42", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	span := env.onlySpan(t)
	require.Equal(t, "DELETE /api/dorks/:id", span.Name())
	require.Equal(t, "/api/dorks/:id", spanAttrs(span)["http.route"].AsString())
	require.Equal(t, int64(http.StatusNoContent), spanAttrs(span)["http.response.status_code"].AsInt64())
}

func TestInstrument_ServerErrorMarksSpan(t *testing.T) {
	env := newTracedEnv(t)
	env.dorks.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	rec := env.do(http.MethodGet, "/api/dorks", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	span := env.onlySpan(t)
	require.Equal(t, "GET /api/dorks", span.Name())
	require.Equal(t, int64(http.StatusInternalServerError), spanAttrs(span)["http.response.status_code"].AsInt64())
	require.Equal(t, codes.Error, span.Status().Code)
}

func TestInstrument_UnmatchedRoute(t *testing.T) {
	env := newTracedEnv(t)

	rec := env.do(http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	span := env.onlySpan(t)
	require.Equal(t, "GET unmatched", span.Name())
	require.Equal(t, int64(http.StatusNotFound), spanAttrs(span)["http.response.status_code"].AsInt64())
	require.Equal(t, codes.Unset, span.Status().Code)
}
