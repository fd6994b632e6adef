package tag

import (
	"sync"

	"github.com/opensta-go/sta/rf"
)

// Clock is the core's minimal view of a named clock: parsing `create_clock`
// and the rest of the SDC surface is external (SPEC §1 non-goals); only the
// identity needed to key a ClkInfo lives here.
type Clock struct {
	name  string
	index int
}

// Name returns the clock's SDC name.
func (c *Clock) Name() string { return c.name }

// Index returns the clock's dense, stable index.
func (c *Clock) Index() int { return c.index }

// ClockTable interns Clock objects by name.
type ClockTable struct {
	mu     sync.RWMutex
	byName map[string]*Clock
	clocks []*Clock
}

// NewClockTable returns an empty table.
func NewClockTable() *ClockTable {
	return &ClockTable{byName: make(map[string]*Clock)}
}

// FindClock returns (creating if necessary) the clock named name.
func (t *ClockTable) FindClock(name string) *Clock {
	t.mu.RLock()
	if c, ok := t.byName[name]; ok {
		t.mu.RUnlock()
		return c
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.byName[name]; ok {
		return c
	}
	c := &Clock{name: name, index: len(t.clocks)}
	t.clocks = append(t.clocks, c)
	t.byName[name] = c
	return c
}

// clkInfoKey is the comparable field tuple a ClkInfo is interned by
// (DATA MODEL: "ClkInfo: interned record (clock, clock_edge, crpr_pin,
// generated_state, pll_state, path_ap_index)"). CrprPin is a pin identity
// (the core assigns these as dense ints); 0 means "no CRPR pin".
type clkInfoKey struct {
	clock          *Clock
	clockEdge      rf.RiseFall
	crprPin        int
	generatedState int
	pllState       int
	pathAPIndex    int
}

// ClkInfo is the interned clock-network attribute record attached to a Tag.
type ClkInfo struct {
	clkInfoKey
	index int
}

// Clock returns the clock this record belongs to.
func (c *ClkInfo) Clock() *Clock { return c.clock }

// ClockEdge returns the clock transition (rise/fall) this record captures.
func (c *ClkInfo) ClockEdge() rf.RiseFall { return c.clockEdge }

// CrprPin returns the pin identity used for clock-reconvergence-pessimism
// removal, or 0 if none is associated with this record.
func (c *ClkInfo) CrprPin() int { return c.crprPin }

// GeneratedState returns the generated-clock state index, or 0 if this
// clock is not a generated clock.
func (c *ClkInfo) GeneratedState() int { return c.generatedState }

// PllState returns the PLL state index, or 0 if none applies.
func (c *ClkInfo) PllState() int { return c.pllState }

// PathAPIndex returns the path analysis point this ClkInfo was built under.
func (c *ClkInfo) PathAPIndex() int { return c.pathAPIndex }

// Index returns this ClkInfo's dense, interned index.
func (c *ClkInfo) Index() int { return c.index }

// ClkInfoTable interns ClkInfo records. Unlike Table it has no 24-bit
// ceiling and does not check its record count.
type ClkInfoTable struct {
	mu      sync.RWMutex
	byKey   map[clkInfoKey]*ClkInfo
	records []*ClkInfo
}

// NewClkInfoTable returns an empty table.
func NewClkInfoTable() *ClkInfoTable {
	return &ClkInfoTable{byKey: make(map[clkInfoKey]*ClkInfo)}
}

// ClkInfoParams is the caller-facing (non-interned) field tuple passed to
// Intern; it mirrors clkInfoKey but is exported so other packages can build
// one without reaching into tag's internals.
type ClkInfoParams struct {
	Clock          *Clock
	ClockEdge      rf.RiseFall
	CrprPin        int
	GeneratedState int
	PllState       int
	PathAPIndex    int
}

// Intern returns the canonical ClkInfo for params, allocating one on first
// sight. Identical params always yield the same pointer (and hence the same
// Index) — COMPONENT DESIGN §4.2's "tag(fields) -> TagIndex is total and
// referentially transparent" applies equally to ClkInfo.
func (t *ClkInfoTable) Intern(params ClkInfoParams) *ClkInfo {
	key := clkInfoKey{
		clock:          params.Clock,
		clockEdge:      params.ClockEdge,
		crprPin:        params.CrprPin,
		generatedState: params.GeneratedState,
		pllState:       params.PllState,
		pathAPIndex:    params.PathAPIndex,
	}
	t.mu.RLock()
	if ci, ok := t.byKey[key]; ok {
		t.mu.RUnlock()
		return ci
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if ci, ok := t.byKey[key]; ok {
		return ci
	}
	ci := &ClkInfo{clkInfoKey: key, index: len(t.records)}
	t.records = append(t.records, ci)
	t.byKey[key] = ci
	return ci
}

// compareNoCrpr orders two ClkInfo records ignoring CrprPin, the field
// cmpNoCrpr/tagMatchCmp treat as "clock-reconvergence-pessimism state"
// (DATA MODEL invariant: "Two tags are match-equal when all fields outside
// clock-reconvergence-pessimism state agree").
func compareNoCrpr(a, b *ClkInfo) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	switch {
	case a.clock != b.clock:
		return cmpInt(clockIndexOf(a.clock), clockIndexOf(b.clock))
	case a.clockEdge != b.clockEdge:
		return cmpInt(a.clockEdge.Index(), b.clockEdge.Index())
	case a.generatedState != b.generatedState:
		return cmpInt(a.generatedState, b.generatedState)
	case a.pllState != b.pllState:
		return cmpInt(a.pllState, b.pllState)
	case a.pathAPIndex != b.pathAPIndex:
		return cmpInt(a.pathAPIndex, b.pathAPIndex)
	default:
		return 0
	}
}

func clockIndexOf(c *Clock) int {
	if c == nil {
		return -1
	}
	return c.index
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
