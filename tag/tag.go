package tag

import (
	"sync"

	"github.com/opensta-go/sta/rf"
	"github.com/opensta-go/sta/util"
)

// TagIndexMax (2^24-1) is the ceiling on the live-tag count: indices run
// 0..TagIndexMax-1, so every index packs into 24 bits (COMPONENT DESIGN §4.2).
const TagIndexMax = 1<<24 - 1

// criticalTagOverflow is the numbered critical raised when interning would
// exceed TagIndexMax (§7 taxonomy 4, §9 Open Questions: "do not silently
// wrap").
const criticalTagOverflow = 2400

// tagKey is the comparable field tuple a Tag is interned by (DATA MODEL:
// "Tag: interned record (rf_index, path_ap_index, clk_info, is_clock,
// exception_states)"). exceptionStates is pre-canonicalized by the caller
// into a stable string (e.g. a sorted, delimited list of exception ids) so
// it can be used as a map key.
type tagKey struct {
	rfIndex         int
	pathAPIndex     int
	clkInfo         *ClkInfo
	isClock         bool
	exceptionStates string
}

// Tag is the interned per-path descriptor that lets the propagation engine
// keep multiple arrivals alive at one vertex.
type Tag struct {
	tagKey
	index int
}

// RFIndex returns the transition (0=rise, 1=fall) this tag was built for.
func (t *Tag) RFIndex() int { return t.rfIndex }

// Transition returns RFIndex() as an rf.RiseFall.
func (t *Tag) Transition() rf.RiseFall { return rf.RiseFall(t.rfIndex) }

// PathAPIndex returns the path analysis point this tag belongs to.
func (t *Tag) PathAPIndex() int { return t.pathAPIndex }

// ClkInfo returns the clock-network attributes attached to this tag.
func (t *Tag) ClkInfo() *ClkInfo { return t.clkInfo }

// IsClock reports whether this tag belongs to a clock-network path.
func (t *Tag) IsClock() bool { return t.isClock }

// ExceptionStates returns the canonicalized active-exception key.
func (t *Tag) ExceptionStates() string { return t.exceptionStates }

// Index returns this tag's dense, interned 24-bit index.
func (t *Tag) Index() int { return t.index }

// Params is the caller-facing field tuple passed to Table.Intern.
type Params struct {
	RFIndex         int
	PathAPIndex     int
	ClkInfo         *ClkInfo
	IsClock         bool
	ExceptionStates string
}

// Table interns Tags by field tuple and enforces the 24-bit index ceiling.
// Intern is total and referentially transparent: identical Params always
// return the same *Tag (COMPONENT DESIGN §4.2).
type Table struct {
	mu     sync.RWMutex
	byKey  map[tagKey]*Tag
	tags   []*Tag
	report *util.Report
}

// NewTable returns an empty table. report receives the critical raised on
// tag-index overflow; if nil, a fresh util.NewReport() is used.
func NewTable(report *util.Report) *Table {
	if report == nil {
		report = util.NewReport()
	}
	return &Table{byKey: make(map[tagKey]*Tag), report: report}
}

// Intern returns the canonical Tag for params, allocating one on first
// sight. Panics via Table.report.Critical if the live-tag count would
// exceed TagIndexMax (2^24-1).
func (t *Table) Intern(params Params) *Tag {
	key := tagKey{
		rfIndex:         params.RFIndex,
		pathAPIndex:     params.PathAPIndex,
		clkInfo:         params.ClkInfo,
		isClock:         params.IsClock,
		exceptionStates: params.ExceptionStates,
	}
	t.mu.RLock()
	if tg, ok := t.byKey[key]; ok {
		t.mu.RUnlock()
		return tg
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if tg, ok := t.byKey[key]; ok {
		return tg
	}
	if len(t.tags) >= TagIndexMax {
		t.report.Critical(criticalTagOverflow,
			"tag group index exceeds %d live tags", TagIndexMax)
	}
	tg := &Tag{tagKey: key, index: len(t.tags)}
	t.tags = append(t.tags, tg)
	t.byKey[key] = tg
	return tg
}

// Count returns the number of distinct tags interned so far.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tags)
}

// Tag returns the tag at index, or nil if out of range.
func (t *Table) Tag(index int) *Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index >= len(t.tags) {
		return nil
	}
	return t.tags[index]
}

// Cmp orders two tags by index: equal indices compare equal, and since
// interning is total, equal fields always share an index (invariant 2 of
// the DATA MODEL).
func Cmp(t1, t2 *Tag) int {
	switch {
	case t1 == t2:
		return 0
	case t1 == nil:
		return -1
	case t2 == nil:
		return 1
	default:
		return cmpInt(t1.index, t2.index)
	}
}

// MatchCmp compares two tags field-by-field rather than by index.
// With crpr=false (the common case — "CRPR-insensitive" match-equality,
// COMPONENT DESIGN §4.2) the ClkInfo's CrprPin field is ignored; with
// crpr=true every field including CrprPin participates.
func MatchCmp(t1, t2 *Tag, crpr bool) int {
	if t1 == t2 {
		return 0
	}
	if t1 == nil {
		return -1
	}
	if t2 == nil {
		return 1
	}
	if c := cmpInt(t1.rfIndex, t2.rfIndex); c != 0 {
		return c
	}
	if c := cmpInt(t1.pathAPIndex, t2.pathAPIndex); c != 0 {
		return c
	}
	if c := clkInfoCmp(t1.clkInfo, t2.clkInfo, crpr); c != 0 {
		return c
	}
	if t1.isClock != t2.isClock {
		if !t1.isClock {
			return -1
		}
		return 1
	}
	if t1.exceptionStates != t2.exceptionStates {
		if t1.exceptionStates < t2.exceptionStates {
			return -1
		}
		return 1
	}
	return 0
}

func clkInfoCmp(a, b *ClkInfo, crpr bool) int {
	if crpr {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		case a.crprPin != b.crprPin:
			return cmpInt(a.crprPin, b.crprPin)
		default:
			return compareNoCrpr(a, b)
		}
	}
	return compareNoCrpr(a, b)
}
