package api

import (
	"net/http"

	reqdto "parking-allocator/internal/handler/dto/request"
	resdto "parking-allocator/internal/handler/dto/response"
	"parking-allocator/internal/handler/middleware"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"
	"parking-allocator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestsHandler struct {
	requestsUseCase usecase.RequestsUseCase
}

func NewRequestsHandler(requestsUseCase usecase.RequestsUseCase) *RequestsHandler {
	return &RequestsHandler{
		requestsUseCase: requestsUseCase,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return uuid.Nil, false
	}
	return userID, true
}

// @Summary List own requests
// @Description List the authenticated user's parking requests in a date range
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Router /requests [get]
func (h *RequestsHandler) GetOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

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

	requests, err := h.requestsUseCase.GetOwn(c.Request.Context(), userID, first, last)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewRequestResponses(requests))
}

// @Summary Submit requests
// @Description Submit parking requests for one or more upcoming working days
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRequestsRequest true "Dates to request"
// @Success 201 {array} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestsHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitRequestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	dates, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	created, err := h.requestsUseCase.Submit(c.Request.Context(), userID, dates)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrDateOutsideWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Date is outside the requestable window"})
		case errs.Is(err, usecase.ErrNotAWorkingDay):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Date is not a working day"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.NewRequestResponses(created))
}

// @Summary Cancel a request
// @Description Cancel the authenticated user's request for a date
// @Tags requests
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{date} [delete]
func (h *RequestsHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := workcal.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	if err := h.requestsUseCase.Cancel(c.Request.Context(), userID, date); err != nil {
		switch {
		case errs.Is(err, usecase.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resolve a soft interruption
// @Description Accept or reject staying interrupted for a date
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.StayInterruptedRequest true "Decision"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{date}/stay-interrupted [post]
func (h *RequestsHandler) StayInterrupted(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := workcal.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	var req reqdto.StayInterruptedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.requestsUseCase.StayInterrupted(c.Request.Context(), userID, date, *req.Accept)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errs.Is(err, usecase.ErrNotInterrupted):
			c.JSON(http.StatusConflict, gin.H{"error": "Request is not awaiting a decision"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.NewRequestResponse(updated))
}

// @Summary Upcoming window summary
// @Description Per-date view of the authenticated user's upcoming window
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DateSummaryResponse
// @Router /summary [get]
func (h *RequestsHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summaries, err := h.requestsUseCase.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewDateSummaryResponses(summaries))
}
