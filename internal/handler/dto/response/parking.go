package response

import (
	"time"

	"parkhaus/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionVehicleResponse struct {
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	Brand        string `json:"brand"`
}

type SessionSpotResponse struct {
	SpotNumber string `json:"spot_number"`
	Floor      int    `json:"floor"`
	SpotType   string `json:"spot_type"`
}

type SessionResponse struct {
	ID            uuid.UUID              `json:"id"`
	EntryTime     time.Time              `json:"entry_time"`
	ExitTime      *time.Time             `json:"exit_time,omitempty"`
	AmountPaid    *float64               `json:"amount_paid,omitempty"`
	PaymentStatus string                 `json:"payment_status"`
	HourlyRate    float64                `json:"hourly_rate"`
	Vehicle       SessionVehicleResponse `json:"vehicle"`
	Spot          SessionSpotResponse    `json:"spot"`
}

func FromSessionView(view *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:            view.ID,
		EntryTime:     view.EntryTime,
		ExitTime:      view.ExitTime,
		AmountPaid:    view.AmountPaid,
		PaymentStatus: view.PaymentStatus,
		HourlyRate:    view.HourlyRate,
		Vehicle: SessionVehicleResponse{
			LicensePlate: view.Vehicle.LicensePlate,
			Color:        view.Vehicle.Color,
			Brand:        view.Vehicle.Brand,
		},
		Spot: SessionSpotResponse{
			SpotNumber: view.Spot.SpotNumber,
			Floor:      view.Spot.Floor,
			SpotType:   view.Spot.SpotType,
		},
	}
}

func FromSessionViews(views []*queries.SessionView) []*SessionResponse {
	result := make([]*SessionResponse, len(views))
	for i, v := range views {
		result[i] = FromSessionView(v)
	}
	return result
}
