//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
)

func TestExtendWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("未設定の期限は現在時刻から起算する", func(t *testing.T) {
		got := promotion.ExtendWindow(now, nil, 7)
		assert.Equal(t, now.AddDate(0, 0, 7), got)
	})

	t.Run("未来の期限には積み増しする", func(t *testing.T) {
		current := now.AddDate(0, 0, 3)
		got := promotion.ExtendWindow(now, &current, 5)
		// 3日 + 5日 = 8日。重ね買いは無駄にならない
		assert.Equal(t, now.AddDate(0, 0, 8), got)
	})

	t.Run("過去の期限は現在時刻にリセットして起算する", func(t *testing.T) {
		stale := now.AddDate(0, 0, -10)
		got := promotion.ExtendWindow(now, &stale, 2)
		assert.Equal(t, now.AddDate(0, 0, 2), got)
	})

	t.Run("期限がちょうど現在時刻なら現在時刻から起算する", func(t *testing.T) {
		current := now
		got := promotion.ExtendWindow(now, &current, 1)
		assert.Equal(t, now.AddDate(0, 0, 1), got)
	})

	t.Run("夏時間切替をまたいでも暦日で加算する", func(t *testing.T) {
		madrid, err := time.LoadLocation("Europe/Madrid")
		if err != nil {
			t.Skip("tzdata not available")
		}
		// 2025-03-30 02:00 CET -> 03:00 CEST
		beforeShift := time.Date(2025, 3, 29, 10, 0, 0, 0, madrid)
		got := promotion.ExtendWindow(beforeShift, nil, 2)
		assert.Equal(t, time.Date(2025, 3, 31, 10, 0, 0, 0, madrid), got)
	})
}

func TestWindowActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.True(t, promotion.WindowActive(&future, now))
	assert.False(t, promotion.WindowActive(&past, now))
	assert.False(t, promotion.WindowActive(&now, now), "期限ちょうどは非アクティブ")
	assert.False(t, promotion.WindowActive(nil, now))
}
