//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/javier-f-ramos/clasifica2/internal/handler/api"
	"github.com/javier-f-ramos/clasifica2/internal/handler/middleware"
	"github.com/javier-f-ramos/clasifica2/internal/usecase/commands"
	"github.com/javier-f-ramos/clasifica2/tests/common/httptest"
	commandsmock "github.com/javier-f-ramos/clasifica2/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

// stubVerifier replaces signature verification so tests can inject events.
type stubVerifier struct {
	event stripe.Event
	err   error
}

func (s *stubVerifier) VerifyWebhook(_ []byte, _ string) (stripe.Event, error) {
	return s.event, s.err
}

type WebhookHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	verifier     *stubVerifier
	router       *gin.Engine
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.verifier = &stubVerifier{}

	handler := api.NewWebhookHandler(s.verifier, s.mockCommands)

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.POST("/webhooks/stripe", handler.HandleStripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func checkoutCompletedEvent(listingID, userID uuid.UUID, kind, days string) stripe.Event {
	raw := fmt.Sprintf(`{
		"id": "cs_test_abc",
		"amount_total": 520,
		"metadata": {
			"listing_id": %q,
			"user_id": %q,
			"promotion_type": %q,
			"duration_days": %q
		}
	}`, listingID, userID, kind, days)

	return stripe.Event{
		ID:   "evt_test_1",
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func (s *WebhookHandlerTestSuite) post() int {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", map[string]any{}, "")
	return rec.Code
}

func (s *WebhookHandlerTestSuite) TestHandleStripe() {
	listingID := uuid.New()
	userID := uuid.New()

	s.Run("正常系は200で購入を適用", func() {
		s.verifier.event = checkoutCompletedEvent(listingID, userID, "featured", "7")
		s.verifier.err = nil

		s.mockCommands.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		s.Equal(http.StatusOK, s.post())
	})

	s.Run("署名不正は400で再送を要求しない", func() {
		s.verifier.err = errors.New("signature mismatch")

		s.Equal(http.StatusBadRequest, s.post())
	})

	s.Run("対象外のイベント種別は200で無視", func() {
		s.verifier.err = nil
		s.verifier.event = stripe.Event{
			ID:   "evt_test_2",
			Type: "invoice.paid",
			Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
		}

		s.Equal(http.StatusOK, s.post())
	})

	s.Run("メタデータ不正は200で再送を止める", func() {
		cases := []struct {
			name string
			ev   stripe.Event
		}{
			{"listing_idが不正", checkoutCompletedEvent(uuid.Nil, userID, "featured", "7")},
			{"promotion_typeが不正", checkoutCompletedEvent(listingID, userID, "banner", "7")},
			{"duration_daysが数値でない", checkoutCompletedEvent(listingID, userID, "featured", "abc")},
			{"duration_daysが0以下", checkoutCompletedEvent(listingID, userID, "featured", "0")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.verifier.err = nil
				s.verifier.event = tc.ev
				if tc.name == "listing_idが不正" {
					// uuid.Nil はパース可能なので、壊れた文字列で上書き
					s.verifier.event.Data.Raw = json.RawMessage(fmt.Sprintf(
						`{"id":"cs_test_abc","amount_total":520,"metadata":{"listing_id":"not-a-uuid","user_id":%q,"promotion_type":"featured","duration_days":"7"}}`,
						userID))
				}

				s.Equal(http.StatusOK, s.post())
			})
		}
	})

	s.Run("リスティング不在は200で再送を止める", func() {
		s.verifier.err = nil
		s.verifier.event = checkoutCompletedEvent(listingID, userID, "featured", "7")

		s.mockCommands.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).
			Return(commands.ErrListingNotFound).Times(1)

		s.Equal(http.StatusOK, s.post())
	})

	s.Run("保存系の失敗は500で再送させる", func() {
		s.verifier.err = nil
		s.verifier.event = checkoutCompletedEvent(listingID, userID, "featured", "7")

		s.mockCommands.EXPECT().ApplyPurchase(gomock.Any(), gomock.Any()).
			Return(commands.ErrPromotionStorage).Times(1)

		s.Equal(http.StatusInternalServerError, s.post())
	})
}
