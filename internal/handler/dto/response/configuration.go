package response

import (
	"parking-allocator/internal/domain/allocation"
)

type ConfigurationResponse struct {
	TotalSpaces         int     `json:"total_spaces"`
	ShortLeadTimeSpaces int     `json:"short_lead_time_spaces"`
	NearbyDistanceKm    float64 `json:"nearby_distance_km"`
}

func NewConfigurationResponse(cfg allocation.Config) ConfigurationResponse {
	return ConfigurationResponse{
		TotalSpaces:         cfg.TotalSpaces,
		ShortLeadTimeSpaces: cfg.ShortLeadTimeSpaces,
		NearbyDistanceKm:    cfg.NearbyDistanceKm,
	}
}
