// Package dcalc implements the arc delay-calculation framework: a
// process-wide registry of interchangeable capability implementations that
// the analysis session (package sta) drives through one shared interface
// (SYSTEM OVERVIEW C6, COMPONENT DESIGN §4.3). Package path does not call
// dcalc; it reads the delays the session caches.
//
// Seven predefined algorithms are registered by name — unit, lumped_cap,
// dmp_ceff_elmore, dmp_ceff_two_pole, arnoldi, ccs_ceff, and prima — ranging
// from a bring-up sentinel to effective-capacitance iteration and
// pole-residue moment matching over the parasitic models package parasitic
// reduces. Delay calculators are never chosen by inheritance; RegisterDelayCalc
// and MakeDelayCalc implement the strategy/factory pattern named in the
// DESIGN NOTES ("Global registry for delay calculators ... process-wide
// state with explicit init()/destroy() lifecycle").
package dcalc
