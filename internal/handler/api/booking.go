package api

import (
	"errors"
	"net/http"

	reqdto "boxarena/internal/handler/dto/request"
	resdto "boxarena/internal/handler/dto/response"
	"boxarena/internal/handler/middleware"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a pending booking and open a payment order for it
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToInput(userID, date))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, errs.ErrFacilityInactive):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility is not accepting bookings",
			})
		case errors.Is(err, errs.ErrPastDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot book slots for past dates",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		case errors.Is(err, errs.ErrCapacityExceeded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Number of people exceeds facility capacity",
			})
		case errors.Is(err, errs.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already booked",
			})
		case errors.Is(err, errs.ErrPaymentOrderFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment order could not be created",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get one of the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all | upcoming | past | cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	filter := queries.BookingListFilter(c.DefaultQuery("filter", "all"))
	views, err := h.bookingQueries.ListUserBookings(c.Request.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown booking filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking; paid bookings are refunded
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id, userID, req.Reason); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotCancellable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking cannot be cancelled",
			})
		case errors.Is(err, errs.ErrPaymentOrderFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Refund could not be processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
	})
}
