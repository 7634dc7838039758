// Package v1handler implements the /api routes: the category catalog, query
// generation and saved dork management.
package v1handler

import (
	"context"
	"dorker/internal/dorkgen"
	"dorker/internal/dorks"
	"dorker/pkg/logger"
	"dorker/pkg/metrics"
	"dorker/pkg/serrors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services used by the handlers. Instruments and Tracer are
// optional.
type Deps struct {
	Dorks     dorks.Service
	Generator dorkgen.Generator
	Storage   Pinger

	Instruments *metrics.Instruments
	Tracer      trace.Tracer
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer("dorker/api/v1")
	}

	return &Handler{deps: deps}
}

// Error is the JSON body of every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an Error body with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

// NewError converts err into an error response. Semantic errors are served
// with the status of their kind and expose their message; anything else is
// logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: kind.Status(),
			Response: Error{
				Code:    kind.Error(),
				Message: kind.DefaultMessage(),
			},
		}
	}

	logger.Debug(ctx, "request rejected", zap.String("code", kind.Error()), zap.Error(err))

	return &ErrorResponse{
		StatusCode: kind.Status(),
		Response: Error{
			Code:    kind.Error(),
			Message: serrors.MessageOf(err),
		},
	}
}

// writeError aborts the request with the response built by NewError.
func (h Handler) writeError(c *gin.Context, err error) {
	res := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(res.StatusCode, res.Response)
}

// Engine returns a gin engine serving the API routes and the health check.
func (h Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(h.recovery(), h.instrument())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/categories", h.GetCategories)
	api.POST("/generate", h.GenerateDork)
	api.GET("/dorks", h.ListDorks)
	api.POST("/dorks", h.CreateDork)
	api.DELETE("/dorks/:id", h.DeleteDork)

	r.NoRoute(func(c *gin.Context) {
		h.writeError(c, serrors.With(serrors.ErrNotFound, "route not found"))
	})

	return r
}

// Health reports whether the storage backend is reachable.
func (h Handler) Health(c *gin.Context) {
	if h.deps.Storage != nil {
		if err := h.deps.Storage.Ping(c.Request.Context()); err != nil {
			h.writeError(c, serrors.Wrap(serrors.ErrUnavailable, err, "storage is unreachable"))

			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
