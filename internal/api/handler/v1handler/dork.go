package v1handler

import (
	"dorker/pkg/domain"
	"dorker/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateDorkRequest is the body of POST /api/dorks.
type CreateDorkRequest struct {
	Name        string `binding:"required" json:"name"`
	Query       string `binding:"required" json:"query"`
	Description string `json:"description"`
}

// GetCategories returns the token catalog.
func (h Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Generator.Categories())
}

// GenerateDork builds a query and search URL from the request body.
func (h Handler) GenerateDork(c *gin.Context) {
	var req domain.DorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	ctx := c.Request.Context()
	res, err := h.deps.Generator.Generate(ctx, req)
	if err != nil {
		h.writeError(c, err)

		return
	}

	if h.deps.Instruments != nil {
		h.deps.Instruments.DorksGenerated.Add(ctx, 1)
	}
	c.JSON(http.StatusOK, res)
}

// ListDorks returns every saved dork, oldest first.
func (h Handler) ListDorks(c *gin.Context) {
	res, err := h.deps.Dorks.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, res)
}

// CreateDork saves a named query.
func (h Handler) CreateDork(c *gin.Context) {
	var req CreateDorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "name and query are required"))

		return
	}

	ctx := c.Request.Context()
	res, err := h.deps.Dorks.Create(ctx, req.Name, req.Query, req.Description)
	if err != nil {
		h.writeError(c, err)

		return
	}

	if h.deps.Instruments != nil {
		h.deps.Instruments.DorksSaved.Add(ctx, 1)
	}
	c.JSON(http.StatusCreated, res)
}

// DeleteDork removes a saved dork by id.
func (h Handler) DeleteDork(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id format"))

		return
	}

	ctx := c.Request.Context()
	if err := h.deps.Dorks.Delete(ctx, domain.SavedDorkID(id)); err != nil {
		h.writeError(c, err)

		return
	}

	if h.deps.Instruments != nil {
		h.deps.Instruments.DorksDeleted.Add(ctx, 1)
	}
	c.Status(http.StatusNoContent)
}
