package domain

import (
	"fmt"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/codec"
)

// codeKey is the single field a CurrencyUnit persists under.
const codeKey = "code"

// EncodeKeyed writes the unit's external representation: exactly one string
// field, the code, under the key "code". Symbol and coefficient are not
// persisted; they are re-derived from the catalog on decode.
func (u CurrencyUnit) EncodeKeyed(w codec.KeyedWriter) {
	w.WriteString(codeKey, string(u.code))
}

// DecodeCurrencyUnit reconstructs a unit from its external representation.
// The decoded code resolves to the canonical catalog constant, so a decoded
// unit is equal to and behaviorally identical with the constant it was
// encoded from. Decoding fails with apperrors.ErrDecode when the code field
// is absent or names no catalog entry; the result is never defaulted to some
// currency.
func DecodeCurrencyUnit(r codec.KeyedReader) (CurrencyUnit, error) {
	raw, ok := r.ReadString(codeKey)
	if !ok {
		return CurrencyUnit{}, fmt.Errorf("%w: missing %q field", apperrors.ErrDecode, codeKey)
	}
	unit, ok := CatalogUnit(UnitCode(raw))
	if !ok {
		return CurrencyUnit{}, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrDecode, raw)
	}
	return unit, nil
}
