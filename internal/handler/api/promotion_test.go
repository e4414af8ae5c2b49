//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/javier-f-ramos/clasifica2/internal/domain/promotion"
	"github.com/javier-f-ramos/clasifica2/internal/handler/api"
	resdto "github.com/javier-f-ramos/clasifica2/internal/handler/dto/response"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/queries"
	"github.com/javier-f-ramos/clasifica2/tests/common/builder"
	"github.com/javier-f-ramos/clasifica2/tests/common/httptest"
	commandsmock "github.com/javier-f-ramos/clasifica2/tests/mock/commands"
	queriesmock "github.com/javier-f-ramos/clasifica2/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromotionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PromotionHandler
	userID       uuid.UUID
}

func (s *PromotionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPromotionHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.GET("/promotions/plans", s.handler.Plans)
	// Mock middleware behavior for the authenticated routes
	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			handler(c)
		}
	}
	s.router.POST("/promotions/checkout", authed(s.handler.CreateCheckout))
	s.router.GET("/promotions/payments", authed(s.handler.Payments))
}

func (s *PromotionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromotionHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionHandlerTestSuite))
}

func (s *PromotionHandlerTestSuite) checkoutBody(listingID uuid.UUID) map[string]any {
	return map[string]any{
		"listing_id":     listingID.String(),
		"promotion_type": "featured",
		"duration_days":  7,
	}
}

func (s *PromotionHandlerTestSuite) TestPlans() {
	s.Run("プラン表を価格付きで返す", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions/plans", nil, "")

		var body struct {
			Plans []resdto.PlanResponse `json:"plans"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Len(body.Plans, len(promotion.Plans()))

		found := false
		for _, p := range body.Plans {
			if p.PromotionType == "featured" && p.DurationDays == 7 {
				s.Equal(int64(520), p.AmountCents)
				found = true
			}
		}
		s.True(found, "featured 7日プランが含まれること")
	})
}

func (s *PromotionHandlerTestSuite) TestCreateCheckout() {
	url := "/promotions/checkout"
	listingID := uuid.New()

	s.Run("正常系はセッションIDとリダイレクトURLを返す", func() {
		s.mockCommands.EXPECT().
			CreateCheckout(gomock.Any(), s.userID, listingID, promotion.KindFeatured, 7).
			Return(&commands.CheckoutSession{
				ID:  "cs_test_123",
				URL: "https://checkout.stripe.com/c/pay/cs_test_123",
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.checkoutBody(listingID), "test-token")

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cs_test_123", resp.SessionID)
		s.Contains(resp.CheckoutURL, "cs_test_123")
	})

	s.Run("未認証は401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.checkoutBody(listingID), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("リクエスト検証", func() {
		cases := []testCaseAuth{
			{
				name:         "listing_idが欠落",
				mutate:       func(m map[string]any) { delete(m, "listing_id") },
				expectCode:   http.StatusBadRequest,
				expectInBody: "Invalid request",
			},
			{
				name:         "promotion_typeが不正",
				mutate:       func(m map[string]any) { m["promotion_type"] = "banner" },
				expectCode:   http.StatusBadRequest,
				expectInBody: "Invalid request",
			},
			{
				name:         "duration_daysが0以下",
				mutate:       func(m map[string]any) { m["duration_days"] = 0 },
				expectCode:   http.StatusBadRequest,
				expectInBody: "Invalid request",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := s.checkoutBody(listingID)
				tc.mutate(body)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "test-token")

				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("コマンド層エラーのマッピング", func() {
		cases := []struct {
			name       string
			cmdErr     error
			expectCode int
		}{
			{"プラン表にない組み合わせは400", commands.ErrUnknownPlan, http.StatusBadRequest},
			{"リスティング不在は404", commands.ErrListingNotFound, http.StatusNotFound},
			{"他人のリスティングは403", commands.ErrListingNotOwned, http.StatusForbidden},
			{"削除済みリスティングは409", commands.ErrListingDeleted, http.StatusConflict},
			{"決済ゲートウェイ失敗は502", commands.ErrCheckoutFailed, http.StatusBadGateway},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateCheckout(gomock.Any(), s.userID, listingID, promotion.KindFeatured, 7).
					Return(nil, tc.cmdErr)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.checkoutBody(listingID), "test-token")

				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
			})
		}
	})
}

func (s *PromotionHandlerTestSuite) TestPayments() {
	url := "/promotions/payments"

	s.Run("自分の購入履歴を返す", func() {
		view := builder.NewPurchaseBuilder().
			WithUserID(s.userID).
			WithSessionID("cs_test_history").
			BuildReadModel()
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID).
			Return([]queries.PaymentView{*view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")

		var body struct {
			Payments []resdto.PaymentResponse `json:"payments"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body.Payments, 1)
		s.Equal("cs_test_history", body.Payments[0].CheckoutSessionID)
	})

	s.Run("未認証は401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}
