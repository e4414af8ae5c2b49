//go:build unit

package promotion_test

import (
	"testing"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	listingID := uuid.New()
	userID := uuid.New()

	testCases := []struct {
		name      string
		sessionID string
		kind      string
		days      int
		errIs     error
	}{
		{name: "featured購入OK", sessionID: "cs_test_a1", kind: "featured", days: 7},
		{name: "premium購入OK", sessionID: "cs_test_a2", kind: "premium", days: 30},
		{name: "不明な種別NG", sessionID: "cs_test_a3", kind: "sponsored", days: 7, errIs: promotion.ErrUnknownKind},
		{name: "空の種別NG", sessionID: "cs_test_a4", kind: "", days: 7, errIs: promotion.ErrUnknownKind},
		{name: "日数0はNG", sessionID: "cs_test_a5", kind: "featured", days: 0, errIs: promotion.ErrInvalidDuration},
		{name: "負の日数NG", sessionID: "cs_test_a6", kind: "featured", days: -3, errIs: promotion.ErrInvalidDuration},
		{name: "セッションID必須", sessionID: "", kind: "featured", days: 7, errIs: promotion.ErrMissingSessionID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := promotion.NewPurchase(tc.sessionID, listingID, userID, tc.kind, tc.days, 520)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.sessionID, p.SessionID())
			assert.Equal(t, listingID, p.ListingID())
			assert.Equal(t, userID, p.UserID())
			assert.Equal(t, tc.kind, p.Kind().String())
			assert.Equal(t, tc.days, p.DurationDays())
			assert.Equal(t, int64(520), p.AmountCents())
		})
	}
}

func TestParseDurationDays(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  int
		errIs error
	}{
		{name: "整数文字列OK", value: "7", want: 7},
		{name: "ゼロNG", value: "0", errIs: promotion.ErrInvalidDuration},
		{name: "負数NG", value: "-1", errIs: promotion.ErrInvalidDuration},
		{name: "数値以外NG", value: "seven", errIs: promotion.ErrInvalidDuration},
		{name: "空文字NG", value: "", errIs: promotion.ErrInvalidDuration},
		{name: "小数NG", value: "7.5", errIs: promotion.ErrInvalidDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := promotion.ParseDurationDays(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindPlan(t *testing.T) {
	t.Run("featured 7日プラン", func(t *testing.T) {
		plan, err := promotion.FindPlan(promotion.KindFeatured, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(520), plan.AmountCents)
	})

	t.Run("premiumは30日のみ", func(t *testing.T) {
		_, err := promotion.FindPlan(promotion.KindPremium, 7)
		assert.ErrorIs(t, err, promotion.ErrUnknownPlan)

		plan, err := promotion.FindPlan(promotion.KindPremium, 30)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), plan.AmountCents)
	})
}
