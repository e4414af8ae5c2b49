package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	reqdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/request"
	resdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/response"
	"github.com/javier-f-ramos/clasifica2/internal/handler/httperr"
	"github.com/javier-f-ramos/clasifica2/internal/handler/middleware"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Publish a new classified ad
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Category not found", nil)
		case errors.Is(err, commands.ErrInvalidListing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create listing failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Get listing
// @Description Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Search listings
// @Description Search published listings; featured listings sort first
// @Tags listings
// @Produce json
// @Param category_id query string false "Category ID"
// @Param province query string false "Province"
// @Param city query string false "City"
// @Param q query string false "Free text search"
// @Param min_price_cents query int false "Minimum price in cents"
// @Param max_price_cents query int false "Maximum price in cents"
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} resdto.ListingSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search filter", nil)
		return
	}

	items, err := h.q.Search(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingSummaries(items)})
}

// @Summary Home premium listings
// @Description Listings with an active premium window, for the home page
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingSummaryResponse
// @Router /listings/premium [get]
func (h *ListingHandler) HomePremium(c *gin.Context) {
	items, err := h.q.HomePremium(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load premium listings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingSummaries(items)})
}

// @Summary My listings
// @Description List the authenticated user's own listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Router /listings/mine [get]
func (h *ListingHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingViews(items)})
}

// @Summary Update listing
// @Description Update own listing; absent fields keep their stored value
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Update listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}

	if err = h.cmds.Update(c.Request.Context(), userID, id, req.ToInput(existing)); err != nil {
		abortListingCommandError(c, err, "Update failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Change listing status
// @Description Pause or republish own listing
// @Tags listings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ChangeListingStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/status [patch]
func (h *ListingHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	var req reqdto.ChangeListingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	status, err := listing.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	if err := h.cmds.ChangeStatus(c.Request.Context(), userID, id, status); err != nil {
		abortListingCommandError(c, err, "Status change failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete listing
// @Description Soft-delete own listing
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), userID, id); err != nil {
		abortListingCommandError(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add listing image
// @Description Attach an uploaded image reference to own listing
// @Tags listings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.AddListingImageRequest true "Image request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/images [post]
func (h *ListingHandler) AddImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	var req reqdto.AddListingImageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.AddImage(c.Request.Context(), userID, id, req.StoragePath, req.SortOrder); err != nil {
		abortListingCommandError(c, err, "Add image failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Listing images
// @Description List image references for a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.ListingImageResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/images [get]
func (h *ListingHandler) Images(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	items, err := h.q.Images(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load images", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": resdto.FromListingImages(items)})
}

func abortListingCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrListingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not your listing", nil)
	case errors.Is(err, commands.ErrListingDeleted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Listing is deleted", nil)
	case errors.Is(err, commands.ErrInvalidListing), errors.Is(err, commands.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func parseSearchFilter(c *gin.Context) (queries.SearchFilter, error) {
	var filter queries.SearchFilter

	if v := c.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}
	if v := c.Query("province"); v != "" {
		filter.Province = &v
	}
	if v := c.Query("city"); v != "" {
		filter.City = &v
	}
	if v := c.Query("q"); v != "" {
		filter.Search = &v
	}
	if v := c.Query("min_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.MinPriceCents = &cents
	}
	if v := c.Query("max_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxPriceCents = &cents
	}
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.PageSize = size
	}

	return filter, nil
}
