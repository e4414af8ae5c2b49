package repository

import (
	"context"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"

	"github.com/google/uuid"
)

type PaymentLogWriteQueries interface {
	InsertPaymentLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentLogParams) (sqlc.PaymentsLog, error)
}

type PaymentLogRepository struct {
	queries PaymentLogWriteQueries
}

func NewPaymentLogRepository(queries PaymentLogWriteQueries) *PaymentLogRepository {
	return &PaymentLogRepository{queries: queries}
}

// statusCompleted mirrors the checkout.session.completed event that feeds
// every row in the log.
const statusCompleted = "completed"

// Insert records one confirmed purchase. The UNIQUE constraint on
// checkout_session_id surfaces replayed webhooks as KindDuplicateKey.
func (r *PaymentLogRepository) Insert(ctx context.Context, tx sqlc.DBTX, p *promotion.Purchase) (uuid.UUID, error) {
	row, err := r.queries.InsertPaymentLog(ctx, tx, sqlc.InsertPaymentLogParams{
		ID:                uuid.New(),
		CheckoutSessionID: p.SessionID(),
		UserID:            p.UserID(),
		ListingID:         p.ListingID(),
		PromotionType:     p.Kind().String(),
		AmountCents:       p.AmountCents(),
		DurationDays:      int32(p.DurationDays()),
		Status:            statusCompleted,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert payment log", err)
	}
	return row.ID, nil
}
