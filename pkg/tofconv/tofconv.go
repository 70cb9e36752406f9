package tofconv

import (
	"github.com/bft-labs/tofconv/internal/domain"
	"github.com/bft-labs/tofconv/internal/physics"
	"github.com/bft-labs/tofconv/internal/quantity"
	"github.com/bft-labs/tofconv/pkg/log"
)

// Default output units.
const (
	DefaultEnergyUnit = "eV"
	DefaultTimeUnit   = "µs"
)

// NeutronMass is the neutron rest mass in kilograms used by every conversion.
const NeutronMass = physics.NeutronMass

// Error is the error type returned by conversions.
type Error = domain.Error

// Sentinels for errors.Is.
var (
	ErrInvalidNumber   = domain.ErrInvalidNumber
	ErrUnsupportedUnit = domain.ErrUnsupportedUnit
	ErrDivisionByZero  = domain.ErrDivisionByZero
	ErrOutOfRange      = domain.ErrOutOfRange
)

// Input is a raw quantity as typed by a user, e.g. {"12.5", "keV"}.
type Input struct {
	Value string
	Unit  string
}

// Converter runs conversions. The zero value is not usable; use New.
type Converter struct {
	logger    log.Logger
	formatter quantity.Formatter
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{
		logger:    o.logger,
		formatter: quantity.Formatter{Precision: o.precision},
	}
}

// ToEnergy converts a time of flight over length into a neutron energy
// rendered in unit.
func (c *Converter) ToEnergy(length, tof Input, unit string) (string, error) {
	l, err := quantity.ReadLength(length.Value, length.Unit)
	if err != nil {
		return "", c.fail("to_energy", err)
	}
	t, err := quantity.ReadTime(tof.Value, tof.Unit)
	if err != nil {
		return "", c.fail("to_energy", err)
	}

	e, err := physics.EnergyFromTOF(t, l)
	if err != nil {
		return "", c.fail("to_energy", err)
	}
	out, err := c.formatter.Energy(e, unit)
	if err != nil {
		return "", c.fail("to_energy", err)
	}

	c.logger.Debug("converted time of flight to energy",
		log.Float32("length_m", l.Meters()),
		log.Float32("tof_s", t.Seconds()),
		log.Float32("energy_j", e.Joules()),
		log.String("result", out),
	)
	return out, nil
}

// ToTOF converts a neutron energy over length into a time of flight
// rendered in unit.
func (c *Converter) ToTOF(length, energy Input, unit string) (string, error) {
	l, err := quantity.ReadLength(length.Value, length.Unit)
	if err != nil {
		return "", c.fail("to_tof", err)
	}
	e, err := quantity.ReadEnergy(energy.Value, energy.Unit)
	if err != nil {
		return "", c.fail("to_tof", err)
	}

	t, err := physics.TOFFromEnergy(e, l)
	if err != nil {
		return "", c.fail("to_tof", err)
	}
	out, err := c.formatter.Time(t, unit)
	if err != nil {
		return "", c.fail("to_tof", err)
	}

	c.logger.Debug("converted energy to time of flight",
		log.Float32("length_m", l.Meters()),
		log.Float32("energy_j", e.Joules()),
		log.Float32("tof_s", t.Seconds()),
		log.String("result", out),
	)
	return out, nil
}

func (c *Converter) fail(op string, err error) error {
	c.logger.Debug("conversion failed", log.String("op", op), log.Err(err))
	return err
}

var std = New()

// ToEnergy converts with a default Converter.
func ToEnergy(length, tof Input, unit string) (string, error) {
	return std.ToEnergy(length, tof, unit)
}

// ToTOF converts with a default Converter.
func ToTOF(length, energy Input, unit string) (string, error) {
	return std.ToTOF(length, energy, unit)
}
