package api

import (
	"errors"
	"net/http"

	reqdto "boxarena/internal/handler/dto/request"
	"boxarena/internal/handler/middleware"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Verify payment
// @Description Verify the gateway capture proof and confirm the booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.VerifyPaymentRequest true "Capture proof"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.paymentCommands.VerifyPayment(c.Request.Context(), commands.VerifyPaymentInput{
		BookingID: bookingID,
		UserID:    userID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrPaymentVerificationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment verification failed",
			})
		case errors.Is(err, errs.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already booked",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not awaiting payment",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified, booking confirmed",
	})
}
