package api

import (
	"net/http"

	"parking-allocator/internal/domain/allocation"
	reqdto "parking-allocator/internal/handler/dto/request"
	resdto "parking-allocator/internal/handler/dto/response"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConfigurationHandler struct {
	configurationUseCase usecase.ConfigurationUseCase
}

func NewConfigurationHandler(configurationUseCase usecase.ConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{
		configurationUseCase: configurationUseCase,
	}
}

// @Summary Get allocation configuration
// @Tags configuration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 404 {object} map[string]string
// @Router /configuration [get]
func (h *ConfigurationHandler) Get(c *gin.Context) {
	cfg, err := h.configurationUseCase.Get(c.Request.Context())
	if err != nil {
		if errs.Is(err, usecase.ErrConfigurationUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not set"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewConfigurationResponse(cfg))
}

// @Summary Update allocation configuration
// @Tags configuration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PutConfigurationRequest true "New configuration"
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /configuration [put]
func (h *ConfigurationHandler) Put(c *gin.Context) {
	var req reqdto.PutConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cfg, err := h.configurationUseCase.Put(c.Request.Context(),
		req.TotalSpaces, req.ShortLeadTimeSpaces, req.NearbyDistanceKm)
	if err != nil {
		if errs.Is(err, allocation.ErrInvalidSpaceCount) || errs.Is(err, allocation.ErrReservedExceeds) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid configuration values"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewConfigurationResponse(cfg))
}
