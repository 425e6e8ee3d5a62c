package domain

// Measurement pairs a numeric amount with the unit it is denominated in.
// The zero value is 0 in the zero unit and is not useful; build one with
// NewMeasurement.
type Measurement struct {
	value float64
	unit  CurrencyUnit
}

// NewMeasurement builds a measurement of value in the given unit.
func NewMeasurement(value float64, unit CurrencyUnit) Measurement {
	return Measurement{value: value, unit: unit}
}

// Value returns the current amount.
func (m Measurement) Value() float64 {
	return m.value
}

// Unit returns the current denomination.
func (m Measurement) Unit() CurrencyUnit {
	return m.unit
}

// Convert rescales the measurement into the target unit in place, pivoting
// through the base currency:
//
//	value_target = value_source * (source.coefficient / target.coefficient)
//
// Converting into a unit equal to the current one (by the code+symbol
// equality rule) is an identity, so no floating-point drift is introduced by
// a needless round trip.
func (m *Measurement) Convert(to CurrencyUnit) {
	if m.unit.Equal(to) {
		return
	}
	m.value *= m.unit.Coefficient() / to.Coefficient()
	m.unit = to
}

// Converted returns a copy of the measurement rescaled into the target unit,
// leaving the receiver untouched.
func (m Measurement) Converted(to CurrencyUnit) Measurement {
	out := m
	out.Convert(to)
	return out
}
