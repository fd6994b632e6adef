// Package tag interns the per-path descriptors (ClkInfo, Tag) that let the
// propagation engine keep multiple arrivals alive at the same vertex: one
// per distinguishable combination of clock, exception state, and analysis
// point (DATA MODEL: "ClkInfo", "Tag"; SYSTEM OVERVIEW C2).
//
// Interning is total and referentially transparent: identical field tuples
// always map to the same Index, and the total live-tag count is bounded at
// 2^24-1 so a Tag's index packs into 24 bits (COMPONENT DESIGN §4.2).
// Exceeding that bound is a critical, unrecoverable condition — see
// Table.Intern.
package tag
