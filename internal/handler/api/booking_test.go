//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"boxarena/internal/handler/api"
	resdto "boxarena/internal/handler/dto/response"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"
	"boxarena/tests/common/httptest"
	commandsmock "boxarena/tests/mock/commands"
	queriesmock "boxarena/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: a bearer token resolves to a fixed user.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}

	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/bookings", authed(s.handler.ListBookings))
	s.router.GET("/bookings/:id", authed(s.handler.GetBooking))
	s.router.POST("/bookings/:id/cancel", authed(s.handler.CancelBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"facilityId":    uuid.New().String(),
		"date":          "2025-07-11",
		"startTime":     "18:00",
		"durationHours": 2,
		"people":        8,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with checkout details", func() {
		body := s.validCreateBody()
		result := &commands.CreateBookingResult{
			BookingID:   uuid.New(),
			Reference:   "BA-MB2K3X-A1B2C",
			OrderID:     "order_N9yZ4kq1",
			AmountPaise: 160000,
			Currency:    "INR",
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateBookingInput) (*commands.CreateBookingResult, error) {
				s.Equal(s.userID, in.UserID)
				s.Equal("18:00", in.StartTime)
				s.Equal(2, in.DurationHours)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.OrderID, response.OrderID)
		s.Equal(result.AmountPaise, response.AmountPaise)
		s.Equal("INR", response.Currency)
	})

	s.Run("error: 400 on malformed date", func() {
		body := s.validCreateBody()
		body["date"] = "11-07-2025"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 400 on missing required fields", func() {
		body := s.validCreateBody()
		delete(body, "startTime")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
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
				name:           "facility not found",
				commandsError:  errs.ErrFacilityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Facility not found",
			},
			{
				name:           "past date",
				commandsError:  errs.ErrPastDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "past dates",
			},
			{
				name:           "invalid time slot",
				commandsError:  errs.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "capacity exceeded",
				commandsError:  errs.ErrCapacityExceeded,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "capacity",
			},
			{
				name:           "slot conflict",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "payment order failure",
				commandsError:  errs.ErrPaymentOrderFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment order",
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
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) bookingView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		Reference:     "BA-MB2K3X-A1B2C",
		UserID:        s.userID,
		FacilityID:    uuid.New(),
		FacilityName:  "Arena One",
		FacilityType:  "cricket",
		Date:          time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		EndTime:       "20:00",
		Duration:      2,
		People:        8,
		TotalAmount:   1600,
		Status:        "confirmed",
		PaymentStatus: "paid",
		CreatedAt:     time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := s.bookingView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Reference, response.Reference)
		s.Equal("2025-07-11", response.Date)
	})

	s.Run("error: 404 when booking belongs to someone else", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: defaults to the all filter", func() {
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.userID, queries.BookingListFilter("all")).
			Return([]*queries.BookingView{s.bookingView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: passes the requested filter through", func() {
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.userID, queries.BookingListFilter("upcoming")).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?filter=upcoming", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown filter", func() {
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.userID, queries.BookingListFilter("bogus")).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?filter=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown booking filter")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: cancels with a reason", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "rain forecast").
			Return(nil).Times(1)

		body := map[string]any{"reason": "rain forecast"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
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
				name:           "not cancellable",
				commandsError:  errs.ErrNotCancellable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot be cancelled",
			},
			{
				name:           "refund failure",
				commandsError:  errs.ErrPaymentOrderFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Refund",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
