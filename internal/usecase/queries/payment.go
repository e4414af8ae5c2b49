package queries

import (
	"context"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]PaymentView, error)
}

// PaymentQueries serves a seller's own purchase history.
type PaymentQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]PaymentView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
