package api

import (
	"errors"
	"net/http"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	reqdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/request"
	resdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/response"
	"github.com/javier-f-ramos/clasifica2/internal/handler/httperr"
	"github.com/javier-f-ramos/clasifica2/internal/handler/middleware"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds     commands.PromotionCommands
	payments queries.PaymentQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, payments queries.PaymentQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, payments: payments}
}

// @Summary Promotion plans
// @Description List purchasable promotion plans with server-side prices
// @Tags promotions
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /promotions/plans [get]
func (h *PromotionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": resdto.FromPlans(promotion.Plans())})
}

// @Summary Create promotion checkout
// @Description Open a hosted checkout session for a promotion plan
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/checkout [post]
func (h *PromotionHandler) CreateCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	kind, err := req.Kind()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown promotion type", nil)
		return
	}

	session, err := h.cmds.CreateCheckout(c.Request.Context(), userID, req.ListingID, kind, req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownPlan):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No plan for that type and duration", nil)
		case errors.Is(err, commands.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, commands.ErrListingNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your listing", nil)
		case errors.Is(err, commands.ErrListingDeleted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Listing is deleted", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Checkout session creation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}

// @Summary My payments
// @Description List the authenticated user's promotion purchases
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /promotions/payments [get]
func (h *PromotionHandler) Payments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationFailed, "Unauthorized", nil)
		return
	}
	items, err := h.payments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payments", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": resdto.FromPaymentViews(items)})
}
