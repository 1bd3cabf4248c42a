package api

import (
	"net/http"

	reqdto "parking-allocator/internal/handler/dto/request"
	resdto "parking-allocator/internal/handler/dto/response"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"
	"parking-allocator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationsHandler struct {
	reservationsUseCase usecase.ReservationsUseCase
}

func NewReservationsHandler(reservationsUseCase usecase.ReservationsUseCase) *ReservationsHandler {
	return &ReservationsHandler{
		reservationsUseCase: reservationsUseCase,
	}
}

// @Summary List reservations
// @Description List space reservations in a date range
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationsHandler) GetRange(c *gin.Context) {
	first, err := workcal.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return
	}
	last, err := workcal.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return
	}

	reservations, err := h.reservationsUseCase.GetRange(c.Request.Context(), first, last)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewReservationResponses(reservations))
}

// @Summary Replace reservations
// @Description Replace every reservation in a date range with the given set
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.ReplaceReservationsRequest true "Replacement set"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [put]
func (h *ReservationsHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceReservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	first, last, reservations, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := h.reservationsUseCase.Replace(c.Request.Context(), first, last, reservations); err != nil {
		switch {
		case errs.Is(err, usecase.ErrReservationOutsideRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reservation date is outside the submitted range"})
		case errs.Is(err, usecase.ErrTooManyReservations):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reservations for a date exceed total spaces"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
