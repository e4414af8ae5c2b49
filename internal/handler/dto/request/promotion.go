package request

import (
	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
)

type CreateCheckoutRequest struct {
	ListingID     uuid.UUID `json:"listing_id" binding:"required"`
	PromotionType string    `json:"promotion_type" binding:"required,oneof=featured premium"`
	DurationDays  int       `json:"duration_days" binding:"required,min=1"`
}

func (r *CreateCheckoutRequest) Kind() (promotion.Kind, error) {
	return promotion.NewKind(r.PromotionType)
}
