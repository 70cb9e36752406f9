// Package tofconv converts between neutron time of flight and neutron
// kinetic energy over a known flight path.
//
// Inputs are raw (value, unit) text pairs as a user would type them. Each
// call parses every input, applies E = m·L²/(2·t²) or its inverse, and
// renders the result in the requested unit:
//
//	conv := tofconv.New()
//	s, err := conv.ToEnergy(
//	    tofconv.Input{Value: "10", Unit: "m"},
//	    tofconv.Input{Value: "1000", Unit: "µs"},
//	    "eV",
//	)
//	// s == "0.522704 eV"
//
// # Errors
//
// The first failing step is returned unchanged and nothing is computed past
// it. All failures are *[Error] values; match them with errors.Is against
// [ErrInvalidNumber], [ErrUnsupportedUnit], [ErrDivisionByZero] and
// [ErrOutOfRange].
//
// # Units
//
// Lengths: cm, m, km. Times: ns, µs (us), ms, s. Energies: eV, keV, MeV,
// GeV, J. Full names and plurals are accepted and matching ignores case,
// except that "ms" and "MeV" keep their prefix case.
package tofconv
