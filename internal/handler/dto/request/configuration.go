package request

type PutConfigurationRequest struct {
	TotalSpaces         int     `json:"total_spaces" binding:"required,min=1"`
	ShortLeadTimeSpaces int     `json:"short_lead_time_spaces" binding:"min=0"`
	NearbyDistanceKm    float64 `json:"nearby_distance_km" binding:"required,gt=0"`
}
