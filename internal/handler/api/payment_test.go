//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"boxarena/internal/handler/api"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/commands"
	"boxarena/tests/common/httptest"
	commandsmock "boxarena/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/bookings/:id/payment/verify", func(c *gin.Context) {
		// Mock middleware behavior
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.VerifyPayment(c)
	})
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestVerifyPayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment/verify"
	body := map[string]any{
		"razorpayOrderId":   "order_N9yZ4kq1",
		"razorpayPaymentId": "pay_N9yZ7mw3",
		"razorpaySignature": "4b2c1f0e8a",
	}

	s.Run("success: confirms the booking", func() {
		s.mockCommands.EXPECT().
			VerifyPayment(gomock.Any(), commands.VerifyPaymentInput{
				BookingID: bookingID,
				UserID:    s.userID,
				OrderID:   "order_N9yZ4kq1",
				PaymentID: "pay_N9yZ7mw3",
				Signature: "4b2c1f0e8a",
			}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing capture proof fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"razorpayOrderId": "order_N9yZ4kq1"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "signature rejected",
				commandsError:  errs.ErrPaymentVerificationFailed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Payment verification failed",
			},
			{
				name:           "slot taken before confirmation",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "booking already settled",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not awaiting payment",
			},
			{
				name:           "internal server error",
				commandsError:  errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
