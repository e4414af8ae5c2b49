package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/handler/httperr"
	"github.com/javier-f-ramos/clasifica2/internal/infra/payment"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
)

const checkoutCompletedEvent = "checkout.session.completed"

// WebhookVerifier authenticates a raw webhook delivery.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error)
}

// WebhookHandler receives payment processor events. Response codes follow the
// processor's retry contract: 2xx stops redelivery, 5xx requests it. Payloads
// that can never succeed (bad metadata, vanished listing) are acknowledged
// with 200 and logged, otherwise the processor would retry them forever.
type WebhookHandler struct {
	verifier WebhookVerifier
	cmds     commands.PromotionCommands
}

func NewWebhookHandler(verifier WebhookVerifier, cmds commands.PromotionCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, cmds: cmds}
}

// @Summary Payment webhook
// @Description Receive checkout completion events from the payment processor
// @Tags webhooks
// @Accept json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	event, err := h.verifier.VerifyWebhook(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		return
	}

	if string(event.Type) != checkoutCompletedEvent {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		slog.Warn("webhook payload could not be parsed", "event_id", event.ID, "error", err.Error())
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	purchase, err := purchaseFromSession(&session)
	if err != nil {
		slog.Warn("webhook metadata rejected",
			"event_id", event.ID,
			"checkout_session_id", session.ID,
			"error", err.Error())
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.cmds.ApplyPurchase(c.Request.Context(), purchase); err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			slog.Warn("webhook for unknown listing",
				"checkout_session_id", purchase.SessionID(),
				"listing_id", purchase.ListingID())
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		// Storage failure: signal the processor to redeliver.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to apply purchase", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func purchaseFromSession(session *stripe.CheckoutSession) (*promotion.Purchase, error) {
	listingID, err := uuid.Parse(session.Metadata[payment.MetadataListingID])
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(session.Metadata[payment.MetadataUserID])
	if err != nil {
		return nil, err
	}
	days, err := promotion.ParseDurationDays(session.Metadata[payment.MetadataDurationDays])
	if err != nil {
		return nil, err
	}

	return promotion.NewPurchase(
		session.ID,
		listingID,
		userID,
		session.Metadata[payment.MetadataPromotionType],
		days,
		session.AmountTotal,
	)
}
