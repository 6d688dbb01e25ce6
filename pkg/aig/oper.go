package aig

// And builds the canonical conjunction of a and b: constant folding and
// fanin dedup first (a==b, a==¬b, either operand constant), then sorted
// canonical orientation, then a strash-table lookup/create.
func (m *Manager) And(a, b Edge) Edge {
	if a.Equal(b) {
		return a
	}
	if a.Equal(b.Not()) {
		return m.Const0()
	}
	c1 := m.const1ID
	if a.ID() == c1 {
		if a.IsComplement() {
			return m.Const0()
		}
		return b
	}
	if b.ID() == c1 {
		if b.IsComplement() {
			return m.Const0()
		}
		return a
	}
	if a.ID() > b.ID() {
		a, b = b, a
	}
	return m.createHashed(KindAnd, a, b)
}

// Or builds the canonical disjunction: Or(a,b) = ¬And(¬a,¬b). When the
// manager's EXOR-capture flag is set and the two operands are regular edges
// to And nodes forming the `(a∧¬b)∨(¬a∧b)` pattern, the pair collapses into
// a single Exor node instead of the usual three-gate expansion (design note
// "EXOR capture").
func (m *Manager) Or(a, b Edge) Edge {
	if m.exorCapture {
		if ok, x, y := m.matchExorOfOr(a, b); ok {
			return m.Exor(x, y)
		}
	}
	return m.And(a.Not(), b.Not()).Not()
}

// matchExorOfOr detects the `Or(And(x,¬y), And(¬x,y))` shape directly from
// Or's two operands, without first constructing the desugared gates.
func (m *Manager) matchExorOfOr(a, b Edge) (ok bool, x, y Edge) {
	if a.IsComplement() || b.IsComplement() {
		return false, Edge{}, Edge{}
	}
	xo := m.objects[a.ID()]
	yo := m.objects[b.ID()]
	if xo.Kind != KindAnd || yo.Kind != KindAnd {
		return false, Edge{}, Edge{}
	}
	// And(x0,x1) ∨ And(¬x0,¬x1) is x0 ⊕ ¬x1
	if ok, x0, x1 := crossMatch(xo, yo); ok {
		return true, x0, x1.Not()
	}
	return false, Edge{}, Edge{}
}

// crossMatch reports whether yo's two fanins are xo's two fanins with both
// polarities flipped (xo = And(x0,x1), yo = And(¬x0,¬x1)), and if so returns
// xo's fanins (x0, x1). Then ¬xo ∧ ¬yo equals x0 ⊕ x1.
func crossMatch(xo, yo *Object) (ok bool, x0, x1 Edge) {
	if xo.Fanin0.ID() == yo.Fanin0.ID() && xo.Fanin1.ID() == yo.Fanin1.ID() &&
		xo.Fanin0.IsComplement() != yo.Fanin0.IsComplement() &&
		xo.Fanin1.IsComplement() != yo.Fanin1.IsComplement() {
		return true, xo.Fanin0, xo.Fanin1
	}
	return false, Edge{}, Edge{}
}

// Exor builds the canonical exclusive-or of a and b. If the manager's
// EXOR-capture flag is clear, Exor desugars to Or(And(a,¬b), And(¬a,b)).
func (m *Manager) Exor(a, b Edge) Edge {
	if !m.exorCapture {
		return m.Or(m.And(a, b.Not()), m.And(a.Not(), b))
	}
	if a.Equal(b) {
		return m.Const0()
	}
	if a.Equal(b.Not()) {
		return m.Const1()
	}
	c1 := m.const1ID
	if a.ID() == c1 {
		return b.NotCond(!a.IsComplement())
	}
	if b.ID() == c1 {
		return a.NotCond(!b.IsComplement())
	}
	if a.ID() > b.ID() {
		a, b = b, a
	}
	return m.createHashed(KindExor, a, b)
}

// Mux builds if-then-else: c ? t : e.
func (m *Manager) Mux(c, t, e Edge) Edge {
	return m.Or(m.And(c, t), m.And(c.Not(), e))
}

// Maj builds the three-input majority function.
func (m *Manager) Maj(a, b, c Edge) Edge {
	return m.Or(m.Or(m.And(a, b), m.And(a, c)), m.And(b, c))
}

// EdgePair is one (a, b) comparison term fed into Miter.
type EdgePair struct{ A, B Edge }

// Miter builds the standard combinational miter over pairs: the balanced
// Or of each pair's Exor. The result is const0 exactly when every pair is
// equivalent.
func (m *Manager) Miter(pairs []EdgePair) Edge {
	terms := make([]Edge, len(pairs))
	for i, p := range pairs {
		terms[i] = m.Exor(p.A, p.B)
	}
	return m.OrMulti(terms)
}

// AndMulti, OrMulti, and ExorMulti build a depth-⌈log2 n⌉ balanced tree by
// recursively halving the input list.
func (m *Manager) AndMulti(edges []Edge) Edge { return m.balancedTree(edges, m.And) }
func (m *Manager) OrMulti(edges []Edge) Edge  { return m.balancedTree(edges, m.Or) }
func (m *Manager) ExorMulti(edges []Edge) Edge { return m.balancedTree(edges, m.Exor) }

func (m *Manager) balancedTree(edges []Edge, op func(a, b Edge) Edge) Edge {
	switch len(edges) {
	case 0:
		return m.Const0()
	case 1:
		return edges[0]
	default:
		mid := len(edges) / 2
		return op(m.balancedTree(edges[:mid], op), m.balancedTree(edges[mid:], op))
	}
}

// CreateAndTree, CreateOrTree, and CreateExorTree each create nVars fresh
// primary inputs and return the balanced N-ary gate over them.
func (m *Manager) CreateAndTree(nVars int) Edge  { return m.balancedTree(m.newPis(nVars), m.And) }
func (m *Manager) CreateOrTree(nVars int) Edge   { return m.balancedTree(m.newPis(nVars), m.Or) }
func (m *Manager) CreateExorTree(nVars int) Edge { return m.balancedTree(m.newPis(nVars), m.Exor) }

func (m *Manager) newPis(n int) []Edge {
	out := make([]Edge, n)
	for i := range out {
		out[i] = m.CreatePi()
	}
	return out
}

// ObjReal chases e through any Buf nodes, XOR-accumulating the inversion
// bit at every hop, and returns the edge to the first non-Buf object it
// reaches.
func (m *Manager) ObjReal(e Edge) Edge {
	comp := e.IsComplement()
	id := e.ID()
	for {
		o := m.objects[id]
		if o.Kind != KindBuf {
			break
		}
		comp = comp != o.Fanin0.IsComplement()
		id = o.Fanin0.ID()
	}
	return NewEdge(id, comp)
}

// ObjIsMuxType reports whether o structurally matches a 2:1 multiplexer.
func (m *Manager) ObjIsMuxType(o *Object) bool {
	ok, _, _, _ := m.RecognizeMux(o)
	return ok
}

// RecognizeMux recovers (ctrl, dataT, dataE) from a node built by Mux, up
// to inverter polarity on the legs.
func (m *Manager) RecognizeMux(o *Object) (ok bool, ctrl, dataT, dataE Edge) {
	if o.Kind != KindAnd || !o.Fanin0.IsComplement() || !o.Fanin1.IsComplement() {
		return false, Edge{}, Edge{}, Edge{}
	}
	xo := m.objects[o.Fanin0.ID()]
	yo := m.objects[o.Fanin1.ID()]
	if xo.Kind != KindAnd || yo.Kind != KindAnd {
		return false, Edge{}, Edge{}, Edge{}
	}
	xs := [2]Edge{xo.Fanin0, xo.Fanin1}
	ys := [2]Edge{yo.Fanin0, yo.Fanin1}
	for i, xf := range xs {
		for j, yf := range ys {
			if xf.ID() == yf.ID() && xf.IsComplement() != yf.IsComplement() {
				return true, xf, xs[1-i], ys[1-j]
			}
		}
	}
	return false, Edge{}, Edge{}, Edge{}
}

// RecognizeExor recovers the two operands of a node built by Exor, whether
// the manager stores it as a native Exor node or the desugared three-gate
// And/Or form. The returned pair satisfies o == Exor(a, b); in the desugared
// form o is the complement of Exor's result, so one operand comes back
// inverted.
func (m *Manager) RecognizeExor(o *Object) (ok bool, a, b Edge) {
	if o.Kind == KindExor {
		return true, o.Fanin0, o.Fanin1
	}
	if o.Kind != KindAnd || !o.Fanin0.IsComplement() || !o.Fanin1.IsComplement() {
		return false, Edge{}, Edge{}
	}
	xo := m.objects[o.Fanin0.ID()]
	yo := m.objects[o.Fanin1.ID()]
	if xo.Kind != KindAnd || yo.Kind != KindAnd {
		return false, Edge{}, Edge{}
	}
	return crossMatch(xo, yo)
}
