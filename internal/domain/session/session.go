package session

import (
	"time"

	"parkhaus/internal/pkg/money"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Session records one stay of one vehicle on one spot. ExitTime is nil while
// the vehicle is parked; AmountPaid is nil until settlement. The hourly rate
// is captured at entry and never changes afterwards.
type Session struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	SpotID        uuid.UUID
	EntryTime     time.Time
	ExitTime      *time.Time
	AmountPaid    *float64
	PaymentStatus PaymentStatus
	HourlyRate    float64
}

func New(vehicleID, spotID uuid.UUID, entry time.Time, hourlyRate float64) Session {
	return Session{
		ID:            uuid.New(),
		VehicleID:     vehicleID,
		SpotID:        spotID,
		EntryTime:     entry.UTC(),
		PaymentStatus: PaymentPending,
		HourlyRate:    hourlyRate,
	}
}

func (s Session) IsActive() bool {
	return s.ExitTime == nil
}

// DurationHours subtracts on explicit UTC instants; timestamps read back from
// storage may carry another zone and must never be compared naively.
func DurationHours(entry, exit time.Time) float64 {
	return exit.UTC().Sub(entry.UTC()).Hours()
}

// Settle computes the amount owed for a stay. Stays shorter than one hour are
// billed the one-hour minimum.
func Settle(entry, exit time.Time, hourlyRate float64) float64 {
	hours := DurationHours(entry, exit)
	if hours < 1.0 {
		hours = 1.0
	}
	return money.Round2(hours * hourlyRate)
}
