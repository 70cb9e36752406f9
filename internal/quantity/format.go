package quantity

import (
	"fmt"
	"strconv"
)

const (
	// DefaultPrecision is the number of significant digits rendered when a
	// Formatter has no precision set.
	DefaultPrecision = 6
	// MaxPrecision is the most digits a float32 can meaningfully carry.
	MaxPrecision = 9
)

// Formatter renders quantities in a requested display unit.
type Formatter struct {
	// Precision is the number of significant digits; zero means
	// DefaultPrecision.
	Precision int
}

// Energy renders e in the unit named by target, e.g. "12.5 keV".
func (f Formatter) Energy(e Energy, target string) (string, error) {
	u, err := LookupEnergyUnit(target)
	if err != nil {
		return "", err
	}
	return f.render(e.In(u), u.Symbol()), nil
}

// Time renders d in the unit named by target, e.g. "3.2 µs".
func (f Formatter) Time(d Duration, target string) (string, error) {
	u, err := LookupTimeUnit(target)
	if err != nil {
		return "", err
	}
	return f.render(d.In(u), u.Symbol()), nil
}

// Length renders l in the unit named by target, e.g. "10 m".
func (f Formatter) Length(l Length, target string) (string, error) {
	u, err := LookupLengthUnit(target)
	if err != nil {
		return "", err
	}
	return f.render(l.In(u), u.Symbol()), nil
}

func (f Formatter) render(v float32, symbol string) string {
	p := f.Precision
	if p <= 0 {
		p = DefaultPrecision
	}
	if p > MaxPrecision {
		p = MaxPrecision
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(float64(v), 'g', p, 32), symbol)
}
