// Package util collects the small, dependency-free primitives the rest of
// the timing-analysis core leans on: fuzzy float comparison, SPEF/network
// name translation, shell-style pattern matching, an interned string table,
// and the warning/critical reporting sink.
//
// None of these types know about pins, graphs, or tags; they exist so that
// every other package can share one notion of "close enough" floats, one
// name-escaping convention, and one place warnings are printed.
package util
