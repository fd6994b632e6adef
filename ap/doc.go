// Package ap defines the analysis-point indexing used throughout the
// timing core: MinMax (early/late), Corner (a PVT condition), and the two
// composite points everything else is keyed by —
// PathAnalysisPt (corner x min/max) and DcalcAnalysisPt, its delay-calc
// counterpart.
//
// Every numeric result the engine stores (arrival, required, slew, delay)
// is indexed by one of these analysis points, so their Index() values are
// assigned once, monotonically, and never reused within an analysis run
// (SYSTEM OVERVIEW C3; CONCURRENCY §5 "ordering guarantees").
package ap
