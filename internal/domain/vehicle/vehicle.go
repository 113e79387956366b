package vehicle

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle is created on the first entry of an unseen plate and immutable
// afterwards; color and brand supplied on later entries are discarded.
type Vehicle struct {
	ID           uuid.UUID
	LicensePlate string
	Color        string
	Brand        string
	CreatedAt    time.Time
}

func New(plate, color, brand string) Vehicle {
	return Vehicle{
		ID:           uuid.New(),
		LicensePlate: NormalizePlate(plate),
		Color:        color,
		Brand:        brand,
	}
}

// NormalizePlate is applied before every lookup so that "abc123 " and
// "ABC123" address the same vehicle.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
