package queries

import (
	"context"
	"time"

	"parkhaus/internal/domain/vehicle"
	"parkhaus/internal/infra"
	"parkhaus/internal/pkg/errs"
	"parkhaus/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

// Read models (DTO for read side)

type SessionVehicle struct {
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
	Brand        string `json:"brand"`
}

type SessionSpot struct {
	SpotNumber string `json:"spot_number"`
	Floor      int    `json:"floor"`
	SpotType   string `json:"spot_type"`
}

// SessionView carries resolved vehicle and spot data so callers never trigger
// follow-up reads for related fields.
type SessionView struct {
	ID            uuid.UUID      `json:"id"`
	VehicleID     uuid.UUID      `json:"vehicle_id"`
	SpotID        uuid.UUID      `json:"spot_id"`
	EntryTime     time.Time      `json:"entry_time"`
	ExitTime      *time.Time     `json:"exit_time,omitempty"`
	AmountPaid    *float64       `json:"amount_paid,omitempty"`
	PaymentStatus string         `json:"payment_status"`
	HourlyRate    float64        `json:"hourly_rate"`
	Vehicle       SessionVehicle `json:"vehicle"`
	Spot          SessionSpot    `json:"spot"`
}

type FloorStatus struct {
	Floor     int `json:"floor"`
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type StatusView struct {
	TotalSpots     int           `json:"total_spots"`
	OccupiedSpots  int           `json:"occupied_spots"`
	AvailableSpots int           `json:"available_spots"`
	OccupancyRate  float64       `json:"occupancy_rate"`
	Floors         []FloorStatus `json:"floors"`
}

type VehicleView struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"license_plate"`
	Color        string    `json:"color"`
	Brand        string    `json:"brand"`
	CreatedAt    time.Time `json:"created_at"`
}

type ParkingReadStore interface {
	SessionByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ActiveSessions(ctx context.Context) ([]*SessionView, error)
	FloorOccupancy(ctx context.Context) ([]FloorStatus, error)
	VehicleByPlate(ctx context.Context, plate string) (*VehicleView, error)
}

type ParkingQueries interface {
	Status(ctx context.Context) (*StatusView, error)
	ActiveSessions(ctx context.Context) ([]*SessionView, error)
	VehicleByPlate(ctx context.Context, plate string) (*VehicleView, error)
}

type parkingQueriesImpl struct {
	store ParkingReadStore
}

func NewParkingQueries(store ParkingReadStore) ParkingQueries {
	return &parkingQueriesImpl{store: store}
}

func (q *parkingQueriesImpl) Status(ctx context.Context) (*StatusView, error) {
	floors, err := q.store.FloorOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	view := &StatusView{Floors: floors}
	for i := range floors {
		floors[i].Available = floors[i].Total - floors[i].Occupied
		view.TotalSpots += floors[i].Total
		view.OccupiedSpots += floors[i].Occupied
	}
	view.AvailableSpots = view.TotalSpots - view.OccupiedSpots
	if view.TotalSpots > 0 {
		view.OccupancyRate = money.Round2(float64(view.OccupiedSpots) / float64(view.TotalSpots) * 100)
	}
	if view.Floors == nil {
		view.Floors = []FloorStatus{}
	}
	return view, nil
}

func (q *parkingQueriesImpl) ActiveSessions(ctx context.Context) ([]*SessionView, error) {
	return q.store.ActiveSessions(ctx)
}

func (q *parkingQueriesImpl) VehicleByPlate(ctx context.Context, plate string) (*VehicleView, error) {
	v, err := q.store.VehicleByPlate(ctx, vehicle.NormalizePlate(plate))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}
