package domain

// UnitCode identifies a supported currency (e.g. "USD"). The set of codes is
// closed: values outside the catalog never resolve to a unit.
type UnitCode string

const (
	CodeUSD UnitCode = "USD"
	CodeEUR UnitCode = "EUR"
	CodeGBP UnitCode = "GBP"
	CodeRUR UnitCode = "RUR"
	CodeJPY UnitCode = "JPY"
	CodeAUD UnitCode = "AUD"
	CodeCAD UnitCode = "CAD"
	CodeAMD UnitCode = "AMD"
)

// CurrencyUnit is an immutable currency denomination. The coefficient states
// how many units of the base currency (USD) one unit of this currency equals,
// so USD itself carries coefficient 1.
//
// One canonical instance exists per code (the catalog constants below).
// Callers may build additional instances with NewCurrencyUnit, including ones
// that share a code and symbol with a constant but carry a different
// coefficient; comparing or converting such a duplicate against the canonical
// instance is undefined behavior rather than a guarded error.
type CurrencyUnit struct {
	symbol      string
	code        UnitCode
	coefficient float64
}

// NewCurrencyUnit builds a unit from its parts. It always succeeds: symbol
// emptiness and coefficient positivity are the caller's responsibility. A
// non-positive coefficient yields IEEE-754 results on conversion (Inf on
// zero), never a panic.
func NewCurrencyUnit(symbol string, code UnitCode, coefficient float64) CurrencyUnit {
	return CurrencyUnit{symbol: symbol, code: code, coefficient: coefficient}
}

// The canonical catalog, one constant per code.
var (
	USD = NewCurrencyUnit("$", CodeUSD, 1.0)
	EUR = NewCurrencyUnit("€", CodeEUR, 1.123349)
	GBP = NewCurrencyUnit("£", CodeGBP, 1.25025)
	RUR = NewCurrencyUnit("₽", CodeRUR, 0.01587)
	JPY = NewCurrencyUnit("¥", CodeJPY, 0.009283)
	AUD = NewCurrencyUnit("A$", CodeAUD, 0.7042)
	CAD = NewCurrencyUnit("C$", CodeCAD, 0.764905)
	AMD = NewCurrencyUnit("֏", CodeAMD, 0.00209872)
)

// catalogOrder fixes the listing order of the catalog.
var catalogOrder = [...]CurrencyUnit{USD, EUR, GBP, RUR, JPY, AUD, CAD, AMD}

// BaseUnit returns the pivot currency (USD, coefficient 1). All conversions
// between two non-base currencies pass through it.
func BaseUnit() CurrencyUnit {
	return USD
}

// CatalogUnit resolves a code to its canonical catalog constant. The boolean
// is false for codes outside the closed set.
func CatalogUnit(code UnitCode) (CurrencyUnit, bool) {
	for _, unit := range catalogOrder {
		if unit.code == code {
			return unit, true
		}
	}
	return CurrencyUnit{}, false
}

// CatalogUnits returns the eight canonical constants in catalog order.
func CatalogUnits() []CurrencyUnit {
	units := make([]CurrencyUnit, len(catalogOrder))
	copy(units, catalogOrder[:])
	return units
}

// Symbol returns the display symbol (e.g. "$").
func (u CurrencyUnit) Symbol() string {
	return u.symbol
}

// Code returns the currency code.
func (u CurrencyUnit) Code() UnitCode {
	return u.code
}

// Coefficient returns the linear scale factor against the base currency.
func (u CurrencyUnit) Coefficient() float64 {
	return u.coefficient
}

// BaseUnit returns the shared pivot currency. Part of the LinearUnit
// capability.
func (u CurrencyUnit) BaseUnit() CurrencyUnit {
	return BaseUnit()
}

// Equal reports whether two units share code and symbol. The coefficient is
// deliberately excluded: two units with matching code and symbol but
// different coefficients compare equal even though they behave differently in
// conversion. This is a documented hazard of the model, kept as-is so that
// hidden coefficient mismatches stay visible as a risk instead of being
// silently validated away.
func (u CurrencyUnit) Equal(other CurrencyUnit) bool {
	return u.code == other.code && u.symbol == other.symbol
}

// LinearUnit is the capability a value-with-unit container needs from a unit:
// a scale factor and the shared pivot. CurrencyUnit is the only unit family
// implementing it.
type LinearUnit interface {
	Coefficient() float64
	BaseUnit() CurrencyUnit
}

var _ LinearUnit = CurrencyUnit{}
