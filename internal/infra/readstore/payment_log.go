package readstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/pgconv"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
)

type PaymentLogReadQueries interface {
	ListPaymentLogByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.PaymentsLog, error)
}

type PaymentLogReadStore struct {
	queries PaymentLogReadQueries
	db      sqlc.DBTX
}

func NewPaymentLogReadStore(queries PaymentLogReadQueries, db sqlc.DBTX) *PaymentLogReadStore {
	return &PaymentLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentLogReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentLogByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user ID", err)
	}

	views := make([]queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentView(row))
	}
	return views, nil
}

func toPaymentView(row sqlc.PaymentsLog) queries.PaymentView {
	return queries.PaymentView{
		ID:                row.ID,
		CheckoutSessionID: row.CheckoutSessionID,
		ListingID:         row.ListingID,
		PromotionType:     row.PromotionType,
		DurationDays:      row.DurationDays,
		AmountCents:       row.AmountCents,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
