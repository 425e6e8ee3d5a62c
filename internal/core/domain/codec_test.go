package domain_test

import (
	"testing"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/codec"
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyUnit_EncodeKeyed_WritesOnlyCode(t *testing.T) {
	record := codec.NewRecord()
	domain.EUR.EncodeKeyed(record)

	assert.Len(t, record, 1)
	code, ok := record.ReadString("code")
	require.True(t, ok)
	assert.Equal(t, "EUR", code)
}

func TestDecodeCurrencyUnit_RoundTripsAllConstants(t *testing.T) {
	for _, unit := range domain.CatalogUnits() {
		t.Run(string(unit.Code()), func(t *testing.T) {
			record := codec.NewRecord()
			unit.EncodeKeyed(record)

			decoded, err := domain.DecodeCurrencyUnit(record)
			require.NoError(t, err)

			// Equal by the code+symbol rule, and behaviorally identical:
			// the decoded unit carries the canonical coefficient.
			assert.True(t, decoded.Equal(unit))
			assert.Equal(t, unit.Coefficient(), decoded.Coefficient())

			m := domain.NewMeasurement(12.5, decoded)
			m.Convert(domain.BaseUnit())
			assert.Equal(t, 12.5*unit.Coefficient(), m.Value())
		})
	}
}

func TestDecodeCurrencyUnit_Failures(t *testing.T) {
	tests := []struct {
		name   string
		record codec.Record
	}{
		{name: "missing code field", record: codec.NewRecord()},
		{name: "unrecognized code", record: codec.Record{"code": "XXX"}},
		{name: "empty code", record: codec.Record{"code": ""}},
		{name: "lowercase code", record: codec.Record{"code": "usd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.DecodeCurrencyUnit(tt.record)
			assert.ErrorIs(t, err, apperrors.ErrDecode)
		})
	}
}

func TestDecodeCurrencyUnit_AdHocUnitDecodesToCanonical(t *testing.T) {
	// An ad hoc duplicate encodes only its code, so decoding resolves to
	// the canonical constant and the custom coefficient is lost. The
	// catalog, not the payload, owns coefficients.
	adHoc := domain.NewCurrencyUnit("€", domain.CodeEUR, 2.0)
	record := codec.NewRecord()
	adHoc.EncodeKeyed(record)

	decoded, err := domain.DecodeCurrencyUnit(record)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(adHoc))
	assert.Equal(t, domain.EUR.Coefficient(), decoded.Coefficient())
}
