// Package quantity parses and formats the physical quantities tofconv works
// with: flight-path length, time of flight and neutron energy.
//
// Every quantity is an immutable float32 magnitude normalized to its SI base
// unit (meter, second, joule). Unit tokens are resolved against a closed
// vocabulary; anything outside it is rejected with an unsupported-unit error
// rather than replaced by a default.
package quantity
