package response

import (
	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type PlanResponse struct {
	PromotionType string `json:"promotion_type"`
	DurationDays  int    `json:"duration_days"`
	AmountCents   int64  `json:"amount_cents"`
	Label         string `json:"label"`
}

func FromPlans(plans []promotion.Plan) []*PlanResponse {
	res := make([]*PlanResponse, len(plans))
	for i, p := range plans {
		res[i] = &PlanResponse{
			PromotionType: p.Kind.String(),
			DurationDays:  p.Days,
			AmountCents:   p.AmountCents,
			Label:         p.Label,
		}
	}
	return res
}

type PaymentResponse struct {
	ID                string `json:"id"`
	CheckoutSessionID string `json:"checkout_session_id"`
	ListingID         string `json:"listing_id"`
	PromotionType     string `json:"promotion_type"`
	DurationDays      int32  `json:"duration_days"`
	AmountCents       int64  `json:"amount_cents"`
	CreatedAt         int64  `json:"created_at"`
}

func FromPaymentViews(items []queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(items))
	for i, it := range items {
		res[i] = &PaymentResponse{
			ID:                it.ID.String(),
			CheckoutSessionID: it.CheckoutSessionID,
			ListingID:         it.ListingID.String(),
			PromotionType:     it.PromotionType,
			DurationDays:      it.DurationDays,
			AmountCents:       it.AmountCents,
			CreatedAt:         it.CreatedAt.Unix(),
		}
	}
	return res
}
