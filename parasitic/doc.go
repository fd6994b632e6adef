// Package parasitic models interconnect RC parasitics and reduces a
// detailed distributed network down to the simplified form a given delay
// calculator consumes (SYSTEM OVERVIEW C5, DATA MODEL "Parasitic").
//
// Five representations exist, from most detailed to most reduced:
// DistributedRCNetwork (the as-extracted RC tree), PiModel (three-element
// driver-point pi), ElmoreTree (first-moment Elmore delay over the tree),
// LumpedCapacitance (total sink capacitance only), and PoleResidueModel
// (two-pole fit for moment-matching delay calculators such as
// dmp_ceff_two_pole and prima).
//
// Reduce is a pure function of (detailed network, driver pin, transition,
// dcalc analysis point): repeated calls with the same key return models
// equal within the fuzzy tolerance configured in package util (DATA MODEL
// invariant 5). The Cache type memoizes reductions per
// (driver_pin, rf, dcalc_ap) so a reducer only runs once per key even under
// concurrent readers.
package parasitic
