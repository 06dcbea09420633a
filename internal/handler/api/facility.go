package api

import (
	"errors"
	"net/http"

	resdto "boxarena/internal/handler/dto/response"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FacilityHandler struct {
	facilityQueries queries.FacilityQueries
}

func NewFacilityHandler(facilityQueries queries.FacilityQueries) *FacilityHandler {
	return &FacilityHandler{facilityQueries: facilityQueries}
}

// @Summary List facilities
// @Description List active facilities, optionally filtered by type
// @Tags facilities
// @Produce json
// @Param type query string false "Facility type"
// @Success 200 {array} resdto.FacilityResponse
// @Failure 400 {object} map[string]string
// @Router /facilities [get]
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	views, err := h.facilityQueries.ListFacilities(c.Request.Context(), c.Query("type"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown facility type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFacilityViews(views))
}

// @Summary List facilities grouped by type
// @Description List active facilities bucketed by facility type
// @Tags facilities
// @Produce json
// @Success 200 {object} map[string][]resdto.FacilityResponse
// @Router /facilities/grouped [get]
func (h *FacilityHandler) ListFacilitiesGrouped(c *gin.Context) {
	grouped, err := h.facilityQueries.ListFacilitiesGrouped(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make(map[string][]*resdto.FacilityResponse, len(grouped))
	for ftype, views := range grouped {
		out[ftype] = resdto.FromFacilityViews(views)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get facility
// @Description Get one facility by ID
// @Tags facilities
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} resdto.FacilityResponse
// @Failure 404 {object} map[string]string
// @Router /facilities/{id} [get]
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid facility ID format",
		})
		return
	}

	view, err := h.facilityQueries.GetFacility(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFacilityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Facility not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFacilityView(view))
}
