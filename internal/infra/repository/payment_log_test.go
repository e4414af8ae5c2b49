//go:build unit

package repository

import (
	"context"
	"testing"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentLogWriteQueries struct {
	mock.Mock
}

func (m *MockPaymentLogWriteQueries) InsertPaymentLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentLogParams) (sqlc.PaymentsLog, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.PaymentsLog), args.Error(1)
}

// sqlc.DBTX implementation for MockPaymentLogWriteQueries
func (m *MockPaymentLogWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockPaymentLogWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockPaymentLogWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func testPurchase(t *testing.T, sessionID string) *promotion.Purchase {
	t.Helper()
	p, err := promotion.NewPurchase(sessionID, uuid.New(), uuid.New(), "featured", 7, 520)
	require.NoError(t, err)
	return p
}

func TestPaymentLogInsert(t *testing.T) {
	rowID := uuid.New()

	tests := []struct {
		name      string
		mockRow   sqlc.PaymentsLog
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: sqlc.PaymentsLog{ID: rowID},
		},
		{
			// postgres rejects a replayed session id through the unique
			// constraint; the driver error must classify as DUPLICATE_KEY
			name: "unique violation on checkout_session_id",
			mockError: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "payments_log_checkout_session_id_key",
			},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:      "connection failure",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockPaymentLogWriteQueries)
			mockQueries.On("InsertPaymentLog", mock.Anything, mock.Anything, mock.Anything).
				Return(tt.mockRow, tt.mockError)

			repo := NewPaymentLogRepository(mockQueries)

			id, err := repo.Insert(context.Background(), mockQueries, testPurchase(t, "cs_test_abc"))

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, rowID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestPaymentLogInsertParams(t *testing.T) {
	p := testPurchase(t, "cs_test_params")

	mockQueries := new(MockPaymentLogWriteQueries)
	mockQueries.On("InsertPaymentLog", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertPaymentLogParams) bool {
		return arg.CheckoutSessionID == "cs_test_params" &&
			arg.UserID == p.UserID() &&
			arg.ListingID == p.ListingID() &&
			arg.PromotionType == "featured" &&
			arg.AmountCents == int64(520) &&
			arg.DurationDays == int32(7) &&
			arg.Status == statusCompleted &&
			arg.ID != uuid.Nil
	})).Return(sqlc.PaymentsLog{ID: uuid.New()}, nil)

	repo := NewPaymentLogRepository(mockQueries)

	_, err := repo.Insert(context.Background(), mockQueries, p)

	assert.NoError(t, err)
	mockQueries.AssertExpectations(t)
}
