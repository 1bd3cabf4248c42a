package request

import (
	"parking-allocator/internal/pkg/workcal"
)

type SubmitRequestsRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,dive,required"`
}

func (r *SubmitRequestsRequest) ToDomain() ([]workcal.Date, error) {
	dates := make([]workcal.Date, 0, len(r.Dates))
	for _, raw := range r.Dates {
		d, err := workcal.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

type StayInterruptedRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
