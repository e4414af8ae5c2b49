//go:build unit || e2e

package builder

import (
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseBuilder struct {
	SessionID    string
	ListingID    uuid.UUID
	UserID       uuid.UUID
	Kind         string
	DurationDays int
	AmountCents  int64
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		SessionID:    "cs_test_" + uuid.NewString(),
		ListingID:    uuid.New(),
		UserID:       uuid.New(),
		Kind:         "featured",
		DurationDays: 7,
		AmountCents:  520,
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PurchaseBuilder) BuildDomain() (*promotion.Purchase, error) {
	return promotion.NewPurchase(b.SessionID, b.ListingID, b.UserID, b.Kind, b.DurationDays, b.AmountCents)
}

func (b *PurchaseBuilder) BuildInfra() sqlc.PaymentsLog {
	return sqlc.PaymentsLog{
		ID:                uuid.New(),
		CheckoutSessionID: b.SessionID,
		ListingID:         b.ListingID,
		UserID:            b.UserID,
		PromotionType:     b.Kind,
		AmountCents:       b.AmountCents,
		DurationDays:      int32(b.DurationDays),
		Status:            "completed",
		CreatedAt:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (b *PurchaseBuilder) BuildReadModel() *queries.PaymentView {
	return &queries.PaymentView{
		ID:                uuid.New(),
		CheckoutSessionID: b.SessionID,
		ListingID:         b.ListingID,
		PromotionType:     b.Kind,
		DurationDays:      int32(b.DurationDays),
		AmountCents:       b.AmountCents,
		CreatedAt:         time.Now(),
	}
}

// Fluent builder methods
func (b *PurchaseBuilder) WithSessionID(sessionID string) *PurchaseBuilder {
	b.SessionID = sessionID
	return b
}

func (b *PurchaseBuilder) WithListingID(listingID uuid.UUID) *PurchaseBuilder {
	b.ListingID = listingID
	return b
}

func (b *PurchaseBuilder) WithUserID(userID uuid.UUID) *PurchaseBuilder {
	b.UserID = userID
	return b
}

func (b *PurchaseBuilder) WithKind(kind string) *PurchaseBuilder {
	b.Kind = kind
	return b
}

func (b *PurchaseBuilder) WithDurationDays(days int) *PurchaseBuilder {
	b.DurationDays = days
	return b
}

func (b *PurchaseBuilder) WithAmountCents(cents int64) *PurchaseBuilder {
	b.AmountCents = cents
	return b
}
