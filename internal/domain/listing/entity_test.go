//go:build unit

package listing_test

import (
	"testing"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/listing"
	"github.com/javier-f-ramos/clasifica2/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewListingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestListing(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, listing.StatusPublished, actual.Status())
		assert.Nil(t, actual.FeaturedUntil())
		assert.Nil(t, actual.PremiumUntil())
	})

	t.Run("タイトル検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空タイトルNG",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("") },
				errIs:  listing.ErrInvalidTitle,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("   ") },
				errIs:  listing.ErrInvalidTitle,
			},
		})
	})

	t.Run("価格検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "無料+価格はNG",
				mutate: func(b *builder.ListingBuilder) { b.AsFree().WithPriceCents(100) },
				errIs:  listing.ErrFreeWithPrice,
			},
			{
				name:   "無料(価格なし)はOK",
				mutate: func(b *builder.ListingBuilder) { b.AsFree() },
			},
		})
	})

	t.Run("所在地検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "県なしNG",
				mutate: func(b *builder.ListingBuilder) { b.WithProvince("") },
				errIs:  listing.ErrInvalidLocation,
			},
			{
				name:   "市なしNG",
				mutate: func(b *builder.ListingBuilder) { b.WithCity("") },
				errIs:  listing.ErrInvalidLocation,
			},
		})
	})
}

func TestListingVisibility(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("期限未設定は非表示扱い", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.False(t, l.IsFeatured(now))
		assert.False(t, l.IsPremium(now))
	})

	t.Run("未来の期限のみ有効", func(t *testing.T) {
		future := now.AddDate(0, 0, 3)
		past := now.AddDate(0, 0, -3)

		l := builder.NewListingBuilder().
			WithFeaturedUntil(&future).
			WithPremiumUntil(&past).
			BuildReconstructed()

		assert.True(t, l.IsFeatured(now))
		assert.False(t, l.IsPremium(now), "premiumの期限切れはfeaturedに影響しない")
	})
}

func TestListingStatusTransitions(t *testing.T) {
	t.Run("公開→一時停止→再公開", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, l.Pause())
		assert.Equal(t, listing.StatusPaused, l.Status())

		require.NoError(t, l.Publish())
		assert.Equal(t, listing.StatusPublished, l.Status())
	})

	t.Run("削除後は操作不可", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, l.MarkDeleted())
		assert.ErrorIs(t, l.Pause(), listing.ErrAlreadyDeleted)
		assert.ErrorIs(t, l.Publish(), listing.ErrAlreadyDeleted)
		assert.ErrorIs(t, l.MarkDeleted(), listing.ErrAlreadyDeleted)
	})
}
