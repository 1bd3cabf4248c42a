package response

import (
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/usecase"
)

type RequestResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

func NewRequestResponse(req request.Request) RequestResponse {
	return RequestResponse{
		Date:   req.Date.String(),
		Status: string(req.Status),
	}
}

func NewRequestResponses(requests []request.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, NewRequestResponse(req))
	}
	return out
}

type DateSummaryResponse struct {
	Date           string `json:"date"`
	Status         string `json:"status,omitempty"`
	HasRequest     bool   `json:"has_request"`
	HasReservation bool   `json:"has_reservation"`
}

func NewDateSummaryResponses(summaries []usecase.DateSummary) []DateSummaryResponse {
	out := make([]DateSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, DateSummaryResponse{
			Date:           s.Date.String(),
			Status:         string(s.Status),
			HasRequest:     s.HasRequest,
			HasReservation: s.HasReservation,
		})
	}
	return out
}
