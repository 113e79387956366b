//go:build unit

package money_test

import (
	"testing"

	"parkhaus/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.125, want: 0.13}, // exact binary half, rounds away from zero
		{in: 5.024, want: 5.02},
		{in: 10.0, want: 10.0},
		{in: 0, want: 0},
		{in: 33.333333, want: 33.33},
		{in: 66.666666, want: 66.67},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, money.Round2(tt.in), 1e-9)
	}
}
