// Package units provides shared constants and validation for length units
package units

// Unit constants
const (
	M    = "m"
	FT   = "ft"
	FTUS = "ftUS"
	CM   = "cm"
)

// ValidUnits contains all valid length unit values
var ValidUnits = []string{M, FT, FTUS, CM}

// metresPer maps each unit to its size in metres
var metresPer = map[string]float64{
	M:    1.0,
	FT:   0.3048,
	FTUS: 0.304800609601219,
	CM:   0.01,
}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, ft, ftUS, cm"
}

// ConvertLength converts a length value between units, passing through metres.
// Unknown units are treated as metres.
func ConvertLength(value float64, from, to string) float64 {
	fm, ok := metresPer[from]
	if !ok {
		fm = 1.0
	}
	tm, ok := metresPer[to]
	if !ok {
		tm = 1.0
	}
	return value * fm / tm
}
