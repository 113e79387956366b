package spot

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("invalid spot type")

type Type string

const (
	TypeRegular  Type = "regular"
	TypeDisabled Type = "disabled"
	TypeVIP      Type = "vip"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRegular, TypeDisabled, TypeVIP:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

// Spot is part of the fixed facility inventory. Only the occupancy flag
// changes after seeding, and only through entry/exit transactions.
type Spot struct {
	ID         uuid.UUID
	SpotNumber string
	Floor      int
	SpotType   Type
	IsOccupied bool
}
