package quantity

import (
	"strings"

	"github.com/bft-labs/tofconv/internal/domain"
)

// ElectronVolt is the energy of one electronvolt in joules (exact, SI 2019).
const ElectronVolt = 1.602176634e-19

// unitInfo describes one member of a unit vocabulary.
type unitInfo struct {
	symbol string
	name   string
	// scale converts a magnitude in this unit to the SI base unit.
	scale   float64
	aliases []string
	// strictPrefix requires the symbol's SI prefix letter to keep its case,
	// so "ms" is not read from "Ms" and "MeV" is not read from "meV".
	strictPrefix bool
}

// LengthUnit enumerates the accepted flight-path length units.
type LengthUnit uint8

const (
	Centimeter LengthUnit = iota
	Meter
	Kilometer
)

var lengthUnits = [...]unitInfo{
	Centimeter: {symbol: "cm", name: "centimeter", scale: 1e-2,
		aliases: []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}},
	Meter: {symbol: "m", name: "meter", scale: 1,
		aliases: []string{"m", "meter", "meters", "metre", "metres"}},
	Kilometer: {symbol: "km", name: "kilometer", scale: 1e3,
		aliases: []string{"km", "kilometer", "kilometers", "kilometre", "kilometres"}},
}

// TimeUnit enumerates the accepted time-of-flight units.
type TimeUnit uint8

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

var timeUnits = [...]unitInfo{
	Nanosecond: {symbol: "ns", name: "nanosecond", scale: 1e-9,
		aliases: []string{"ns", "nanosecond", "nanoseconds"}},
	Microsecond: {symbol: "µs", name: "microsecond", scale: 1e-6,
		aliases: []string{"µs", "μs", "us", "mus", "microsecond", "microseconds"}},
	Millisecond: {symbol: "ms", name: "millisecond", scale: 1e-3, strictPrefix: true,
		aliases: []string{"ms", "millisecond", "milliseconds"}},
	Second: {symbol: "s", name: "second", scale: 1,
		aliases: []string{"s", "sec", "second", "seconds"}},
}

// EnergyUnit enumerates the accepted neutron energy units.
type EnergyUnit uint8

const (
	Electronvolt EnergyUnit = iota
	Kiloelectronvolt
	Megaelectronvolt
	Gigaelectronvolt
	Joule
)

var energyUnits = [...]unitInfo{
	Electronvolt: {symbol: "eV", name: "electronvolt", scale: ElectronVolt,
		aliases: []string{"ev", "electronvolt", "electronvolts"}},
	Kiloelectronvolt: {symbol: "keV", name: "kiloelectronvolt", scale: 1e3 * ElectronVolt,
		aliases: []string{"kev", "kiloelectronvolt", "kiloelectronvolts"}},
	Megaelectronvolt: {symbol: "MeV", name: "megaelectronvolt", scale: 1e6 * ElectronVolt, strictPrefix: true,
		aliases: []string{"mev", "megaelectronvolt", "megaelectronvolts"}},
	Gigaelectronvolt: {symbol: "GeV", name: "gigaelectronvolt", scale: 1e9 * ElectronVolt,
		aliases: []string{"gev", "gigaelectronvolt", "gigaelectronvolts"}},
	Joule: {symbol: "J", name: "joule", scale: 1,
		aliases: []string{"j", "joule", "joules"}},
}

// Symbol returns the standard abbreviation, e.g. "km".
func (u LengthUnit) Symbol() string { return lengthUnits[u].symbol }

// String returns the singular unit name.
func (u LengthUnit) String() string { return lengthUnits[u].name }

// Scale returns the number of meters in one u.
func (u LengthUnit) Scale() float64 { return lengthUnits[u].scale }

// Symbol returns the standard abbreviation, e.g. "µs".
func (u TimeUnit) Symbol() string { return timeUnits[u].symbol }

// String returns the singular unit name.
func (u TimeUnit) String() string { return timeUnits[u].name }

// Scale returns the number of seconds in one u.
func (u TimeUnit) Scale() float64 { return timeUnits[u].scale }

// Symbol returns the standard abbreviation, e.g. "keV".
func (u EnergyUnit) Symbol() string { return energyUnits[u].symbol }

// String returns the singular unit name.
func (u EnergyUnit) String() string { return energyUnits[u].name }

// Scale returns the number of joules in one u.
func (u EnergyUnit) Scale() float64 { return energyUnits[u].scale }

// LookupLengthUnit resolves a length unit token.
func LookupLengthUnit(text string) (LengthUnit, error) {
	i, err := lookup(lengthUnits[:], domain.OperandLength, text)
	return LengthUnit(i), err
}

// LookupTimeUnit resolves a time unit token.
func LookupTimeUnit(text string) (TimeUnit, error) {
	i, err := lookup(timeUnits[:], domain.OperandTime, text)
	return TimeUnit(i), err
}

// LookupEnergyUnit resolves an energy unit token.
func LookupEnergyUnit(text string) (EnergyUnit, error) {
	i, err := lookup(energyUnits[:], domain.OperandEnergy, text)
	return EnergyUnit(i), err
}

// lookup matches text, trimmed and lowercased, against the aliases of
// vocab. The error keeps text exactly as given.
func lookup(vocab []unitInfo, operand domain.Operand, text string) (int, error) {
	key := strings.TrimSpace(text)
	lower := strings.ToLower(key)
	for i, u := range vocab {
		for _, alias := range u.aliases {
			if lower != alias {
				continue
			}
			if u.strictPrefix && alias == strings.ToLower(u.symbol) && key[0] != u.symbol[0] {
				return 0, domain.UnsupportedUnit(operand, text)
			}
			return i, nil
		}
	}
	return 0, domain.UnsupportedUnit(operand, text)
}
