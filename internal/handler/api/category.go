package api

import (
	"errors"
	"net/http"

	resdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/response"
	"github.com/javier-f-ramos/clasifica2/internal/handler/httperr"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	q queries.CategoryQueries
}

func NewCategoryHandler(q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{q: q}
}

// @Summary List categories
// @Description List all categories in display order
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load categories", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": resdto.FromCategoryViews(items)})
}

// @Summary Get category
// @Description Get a category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrCategoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}
