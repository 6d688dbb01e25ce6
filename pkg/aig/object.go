package aig

// Object is a single AIG node: a primary input, output, latch, buffer,
// constant, or two-input AND/EXOR gate.
//
// Refs, Level, and NumCuts mirror the bit-width constraints of the source
// system (26, 24, and 8 bits respectively; see Check's ref-overflow and
// level-overflow issues) even though Go does not need the packing: this
// keeps overflow detection meaningful at the same thresholds.
type Object struct {
	Kind           Kind
	Fanin0, Fanin1 Edge
	Phase          bool
	MarkA, MarkB   bool
	Refs           uint32
	Level          uint32
	RevLevel       uint32
	NumCuts        uint8
	TravID         uint32
	ID             int32

	// InitVal holds the three-valued initial state of a Latch (0, 1, or 2
	// for "don't care"); meaningless for other kinds.
	InitVal uint8

	// scratch is not read or written anywhere: the manager's per-pass
	// Scratch table, which replaces the source's aliased void* data field,
	// is keyed by ID directly.
	scratch int32

	// fanout index, only populated when the manager's fanout index is
	// enabled. fanoutHead is the id of the first object fanning out of
	// this one; each object also threads two "next" links, one per fanin
	// slot it occupies, stored in the manager's nextFanout0/1 arrays.
	fanoutHead int32
}

const (
	maxRefs24  = 1<<26 - 1
	maxLevel24 = 1<<24 - 1
)

// IsTerminal reports whether the object is a Pi, Po, Const1, or Latch: a
// node kind that DeleteRec never recurses past.
func (o *Object) IsTerminal() bool {
	switch o.Kind {
	case KindPi, KindPo, KindConst1, KindLatch:
		return true
	default:
		return false
	}
}

// IsNode reports whether the object is an internal two-input gate
// (And or Exor) as opposed to a terminal or Buf.
func (o *Object) IsNode() bool {
	return o.Kind == KindAnd || o.Kind == KindExor
}
