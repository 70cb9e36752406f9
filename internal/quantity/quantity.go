package quantity

import (
	"math"

	"github.com/bft-labs/tofconv/internal/domain"
)

// Length is a flight-path length stored in meters.
type Length struct{ meters float32 }

// Duration is a time of flight stored in seconds.
type Duration struct{ seconds float32 }

// Energy is a neutron kinetic energy stored in joules.
type Energy struct{ joules float32 }

// Meters returns the SI magnitude of l.
func (l Length) Meters() float32 { return l.meters }

// In returns the magnitude of l expressed in u.
func (l Length) In(u LengthUnit) float32 { return float32(float64(l.meters) / u.Scale()) }

// Seconds returns the SI magnitude of d.
func (d Duration) Seconds() float32 { return d.seconds }

// In returns the magnitude of d expressed in u.
func (d Duration) In(u TimeUnit) float32 { return float32(float64(d.seconds) / u.Scale()) }

// Joules returns the SI magnitude of e.
func (e Energy) Joules() float32 { return e.joules }

// In returns the magnitude of e expressed in u.
func (e Energy) In(u EnergyUnit) float32 { return float32(float64(e.joules) / u.Scale()) }

// NewLength scales value from u to meters.
func NewLength(value float32, u LengthUnit) (Length, error) {
	m, err := toSI(value, u.Scale(), domain.OperandLength)
	return Length{meters: m}, err
}

// NewDuration scales value from u to seconds.
func NewDuration(value float32, u TimeUnit) (Duration, error) {
	s, err := toSI(value, u.Scale(), domain.OperandTime)
	return Duration{seconds: s}, err
}

// NewEnergy scales value from u to joules.
func NewEnergy(value float32, u EnergyUnit) (Energy, error) {
	j, err := toSI(value, u.Scale(), domain.OperandEnergy)
	return Energy{joules: j}, err
}

// Meters builds a Length from an SI magnitude computed elsewhere.
func Meters(v float32) Length { return Length{meters: v} }

// Seconds builds a Duration from an SI magnitude computed elsewhere.
func Seconds(v float32) Duration { return Duration{seconds: v} }

// Joules builds an Energy from an SI magnitude computed elsewhere.
func Joules(v float32) Energy { return Energy{joules: v} }

// FitsFloat32 reports whether v is finite and within float32 range.
func FitsFloat32(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= math.MaxFloat32
}

func toSI(value float32, scale float64, operand domain.Operand) (float32, error) {
	v := float64(value) * scale
	if !FitsFloat32(v) {
		return 0, domain.OutOfRange(operand, "")
	}
	return float32(v), nil
}
