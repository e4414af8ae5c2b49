//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/infra"
	"github.com/javier-f-ramos/clasifica2/internal/pkg/clock"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/shared"
	"github.com/javier-f-ramos/clasifica2/tests/common/builder"
	commandsmock "github.com/javier-f-ramos/clasifica2/tests/mock/commands"
	sharedmock "github.com/javier-f-ramos/clasifica2/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromotionCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	listings   *sharedmock.MockListingRepository
	paymentLog *sharedmock.MockPaymentLogRepository
	reads      *sharedmock.MockCommandReads
	gateway    *commandsmock.MockCheckoutGateway
	clock      *clock.MockClock
	sut        commands.PromotionCommands
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func (s *PromotionCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.listings = sharedmock.NewMockListingRepository(s.ctrl)
	s.paymentLog = sharedmock.NewMockPaymentLogRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.gateway = commandsmock.NewMockCheckoutGateway(s.ctrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.sut = commands.NewPromotionCommands(s.uow, s.gateway, s.clock)

	s.tx.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.tx.EXPECT().PaymentLog().Return(s.paymentLog).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *PromotionCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPromotionCommandsSuite(t *testing.T) {
	suite.Run(t, new(PromotionCommandsTestSuite))
}

func (s *PromotionCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

// ================================================================================
// TestApplyPurchase
// ================================================================================

func (s *PromotionCommandsTestSuite) TestApplyPurchase() {
	s.Run("履歴なしのリスティングは現在時刻から延長", func() {
		purchase, err := builder.NewPurchaseBuilder().WithDurationDays(7).BuildDomain()
		s.Require().NoError(err)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(&shared.ListingSnapshot{ID: purchase.ListingID(), Status: "published"}, nil)

		var applied time.Time
		s.listings.EXPECT().
			UpdatePromotionWindow(gomock.Any(), gomock.Any(), purchase.ListingID(), promotion.KindFeatured, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ promotion.Kind, until time.Time) error {
				applied = until
				return nil
			})

		s.Require().NoError(s.sut.ApplyPurchase(context.Background(), purchase))
		s.Equal(fixedNow.AddDate(0, 0, 7), applied)
	})

	s.Run("有効期限が残っている場合は末尾に積み増し", func() {
		current := fixedNow.AddDate(0, 0, 3)
		purchase, err := builder.NewPurchaseBuilder().WithDurationDays(7).BuildDomain()
		s.Require().NoError(err)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(&shared.ListingSnapshot{ID: purchase.ListingID(), FeaturedUntil: &current}, nil)

		var applied time.Time
		s.listings.EXPECT().
			UpdatePromotionWindow(gomock.Any(), gomock.Any(), purchase.ListingID(), promotion.KindFeatured, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ promotion.Kind, until time.Time) error {
				applied = until
				return nil
			})

		s.Require().NoError(s.sut.ApplyPurchase(context.Background(), purchase))
		s.Equal(current.AddDate(0, 0, 7), applied)
	})

	s.Run("期限切れのウィンドウは現在時刻起点にリセット", func() {
		expired := fixedNow.AddDate(0, 0, -10)
		purchase, err := builder.NewPurchaseBuilder().WithDurationDays(3).BuildDomain()
		s.Require().NoError(err)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(&shared.ListingSnapshot{ID: purchase.ListingID(), FeaturedUntil: &expired}, nil)

		var applied time.Time
		s.listings.EXPECT().
			UpdatePromotionWindow(gomock.Any(), gomock.Any(), purchase.ListingID(), promotion.KindFeatured, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ promotion.Kind, until time.Time) error {
				applied = until
				return nil
			})

		s.Require().NoError(s.sut.ApplyPurchase(context.Background(), purchase))
		s.Equal(fixedNow.AddDate(0, 0, 3), applied)
	})

	s.Run("premium購入はfeaturedウィンドウに影響しない", func() {
		featured := fixedNow.AddDate(0, 0, 20)
		purchase, err := builder.NewPurchaseBuilder().WithKind("premium").WithDurationDays(30).BuildDomain()
		s.Require().NoError(err)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(&shared.ListingSnapshot{ID: purchase.ListingID(), FeaturedUntil: &featured}, nil)

		var applied time.Time
		s.listings.EXPECT().
			UpdatePromotionWindow(gomock.Any(), gomock.Any(), purchase.ListingID(), promotion.KindPremium, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ promotion.Kind, until time.Time) error {
				applied = until
				return nil
			})

		s.Require().NoError(s.sut.ApplyPurchase(context.Background(), purchase))
		// premiumウィンドウは未設定なので現在時刻起点
		s.Equal(fixedNow.AddDate(0, 0, 30), applied)
	})

	s.Run("重複セッションIDは何もせず成功", func() {
		purchase, err := builder.NewPurchaseBuilder().BuildDomain()
		s.Require().NoError(err)

		// 実際のドライバが返すエラーをそのまま分類に通す
		dupErr := infra.WrapRepoErr("failed to insert payment log", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "payments_log_checkout_session_id_key",
		})

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.Nil, dupErr)
		// リスティングのロックも更新も呼ばれない

		s.Require().NoError(s.sut.ApplyPurchase(context.Background(), purchase))
	})

	s.Run("リスティング不在はエラー（支払いログはロールバック）", func() {
		purchase, err := builder.NewPurchaseBuilder().BuildDomain()
		s.Require().NoError(err)

		notFound := infra.WrapRepoErr("listing not found for promotion", errors.New("no rows"), infra.KindNotFound)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(nil, notFound)

		err = s.sut.ApplyPurchase(context.Background(), purchase)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrListingNotFound)
	})

	s.Run("保存失敗はErrPromotionStorage", func() {
		purchase, err := builder.NewPurchaseBuilder().BuildDomain()
		s.Require().NoError(err)

		s.expectWithin()
		s.paymentLog.EXPECT().Insert(gomock.Any(), gomock.Any(), purchase).Return(uuid.New(), nil)
		s.listings.EXPECT().LockForPromotion(gomock.Any(), gomock.Any(), purchase.ListingID()).
			Return(&shared.ListingSnapshot{ID: purchase.ListingID()}, nil)
		s.listings.EXPECT().
			UpdatePromotionWindow(gomock.Any(), gomock.Any(), purchase.ListingID(), promotion.KindFeatured, gomock.Any()).
			Return(infra.WrapRepoErr("failed to update window", errors.New("connection reset")))

		err = s.sut.ApplyPurchase(context.Background(), purchase)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrPromotionStorage)
	})
}

// ================================================================================
// TestCreateCheckout
// ================================================================================

func (s *PromotionCommandsTestSuite) TestCreateCheckout() {
	userID := uuid.New()
	listingID := uuid.New()

	ownedSnapshot := func() *shared.ListingSnapshot {
		return &shared.ListingSnapshot{ID: listingID, UserID: userID, Status: "published"}
	}

	s.Run("正常系はプラン表の金額でセッションを作成", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().ListingByID(gomock.Any(), listingID).Return(ownedSnapshot(), nil)

		var captured commands.CheckoutRequest
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
				captured = req
				return &commands.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.example/cs_test_123"}, nil
			})

		session, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 7)
		s.Require().NoError(err)
		s.Equal("cs_test_123", session.ID)
		// クライアントの申告額ではなくプラン表の金額を使う
		s.Equal(int64(520), captured.AmountCents)
		s.Equal(7, captured.DurationDays)
	})

	s.Run("プラン表にない日数はErrUnknownPlan", func() {
		_, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 4)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrUnknownPlan)
	})

	s.Run("他人のリスティングはErrListingNotOwned", func() {
		other := ownedSnapshot()
		other.UserID = uuid.New()

		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().ListingByID(gomock.Any(), listingID).Return(other, nil)

		_, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 7)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrListingNotOwned)
	})

	s.Run("削除済みリスティングはErrListingDeleted", func() {
		deleted := ownedSnapshot()
		deleted.Status = "deleted"

		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().ListingByID(gomock.Any(), listingID).Return(deleted, nil)

		_, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 7)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrListingDeleted)
	})

	s.Run("リスティング不在はErrListingNotFound", func() {
		notFound := infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound)

		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().ListingByID(gomock.Any(), listingID).Return(nil, notFound)

		_, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 7)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrListingNotFound)
	})

	s.Run("ゲートウェイ失敗はErrCheckoutFailed", func() {
		s.uow.EXPECT().CommandReads().Return(s.reads)
		s.reads.EXPECT().ListingByID(gomock.Any(), listingID).Return(ownedSnapshot(), nil)
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe: unreachable"))

		_, err := s.sut.CreateCheckout(context.Background(), userID, listingID, promotion.KindFeatured, 7)
		s.Require().Error(err)
		s.ErrorIs(err, commands.ErrCheckoutFailed)
	})
}
