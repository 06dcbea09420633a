package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "boxarena/internal/handler/dto/response"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Slot availability
// @Description List a facility's slots for a date with price and availability
// @Tags availability
// @Produce json
// @Param id path string true "Facility ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /facilities/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid facility ID format",
		})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), facilityID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, errs.ErrPastDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot fetch slots for past dates",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Price quote
// @Description Quote a whole-hour window's price with a day/night breakdown
// @Tags availability
// @Produce json
// @Param id path string true "Facility ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param startTime query string true "Start time (HH:MM)"
// @Param duration query int true "Duration in hours"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /facilities/{id}/quote [get]
func (h *AvailabilityHandler) QuotePrice(c *gin.Context) {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid facility ID format",
		})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing duration",
		})
		return
	}

	view, err := h.availabilityQueries.QuotePrice(c.Request.Context(), facilityID, date, c.Query("startTime"), duration)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		case errors.Is(err, errs.ErrPastDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot quote slots for past dates",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
