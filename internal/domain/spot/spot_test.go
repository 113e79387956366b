//go:build unit

package spot_test

import (
	"testing"

	"parkhaus/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, valid := range []string{"regular", "disabled", "vip"} {
		t.Run(valid, func(t *testing.T) {
			parsed, err := spot.ParseType(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, parsed.String())
		})
	}

	for _, invalid := range []string{"", "Regular", "premium", "VIP"} {
		t.Run("invalid "+invalid, func(t *testing.T) {
			_, err := spot.ParseType(invalid)
			assert.ErrorIs(t, err, spot.ErrInvalidType)
		})
	}
}
