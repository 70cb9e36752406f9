// Package physics converts between neutron time of flight and kinetic
// energy with the non-relativistic relation E = m·L²/(2·t²).
//
// Inputs arrive already normalized to SI units. Arithmetic runs in float64
// and results are rounded back to float32.
package physics

import (
	"math"

	"github.com/bft-labs/tofconv/internal/domain"
	"github.com/bft-labs/tofconv/internal/quantity"
)

// NeutronMass is the neutron rest mass in kilograms.
const NeutronMass = 1.67493e-27

// EnergyFromTOF returns the kinetic energy of a neutron that covers length
// in time. A zero flight path yields zero energy.
func EnergyFromTOF(time quantity.Duration, length quantity.Length) (quantity.Energy, error) {
	t := float64(time.Seconds())
	if t == 0 {
		return quantity.Energy{}, domain.DivisionByZero(domain.OperandTime)
	}
	l := float64(length.Meters())

	e := NeutronMass * l * l / (2 * t * t)
	if !quantity.FitsFloat32(e) {
		return quantity.Energy{}, domain.OutOfRange(domain.OperandEnergy, "")
	}
	return quantity.Joules(float32(e)), nil
}

// TOFFromEnergy returns the time a neutron of the given kinetic energy
// needs to cover length. It is the inverse of EnergyFromTOF for positive
// times.
func TOFFromEnergy(energy quantity.Energy, length quantity.Length) (quantity.Duration, error) {
	e := float64(energy.Joules())
	switch {
	case e == 0:
		return quantity.Duration{}, domain.DivisionByZero(domain.OperandEnergy)
	case e < 0:
		return quantity.Duration{}, domain.OutOfRange(domain.OperandEnergy, "")
	}
	l := float64(length.Meters())

	t := math.Sqrt(NeutronMass * l * l / (2 * e))
	if !quantity.FitsFloat32(t) {
		return quantity.Duration{}, domain.OutOfRange(domain.OperandTime, "")
	}
	return quantity.Seconds(float32(t)), nil
}
