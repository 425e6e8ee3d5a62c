package utils_test

import (
	"math"
	"testing"

	"github.com/currexo/currency_catalog_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"whole amount", 500, "500"},
		{"rounds to six digits", 1.0493561728, "1.049356"},
		{"keeps exact short fractions", 1.04936, "1.04936"},
		{"negative amount", -0.1234567, "-0.123457"},
		{"zero", 0, "0"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.FormatAmount(tc.amount))
		})
	}
}

func TestFormatAmountWithPrecision(t *testing.T) {
	assert.Equal(t, "1.05", utils.FormatAmountWithPrecision(1.0493561728, 2))
	assert.Equal(t, "1", utils.FormatAmountWithPrecision(1.0493561728, 0))
	assert.Equal(t, "NaN", utils.FormatAmountWithPrecision(math.NaN(), 6))
}
