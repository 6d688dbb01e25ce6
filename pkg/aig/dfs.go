package aig

// Dfs returns a topological order of every live And/Exor node reachable
// from a primary output or a latch, using MarkA for the recursive descent
// and clearing it again before returning (the section 4.6 discipline).
func (m *Manager) Dfs() []*Object {
	out := make([]*Object, 0, m.nAnd+m.nExor)
	m.ForEachPo(func(_ int, e Edge) {
		po := m.Object(e.ID())
		if !po.Fanin0.IsNil() {
			m.dfsRec(m.Object(po.Fanin0.ID()), &out)
		}
	})
	m.ForEachObj(func(o *Object) {
		if o.Kind == KindLatch && !o.Fanin0.IsNil() {
			m.dfsRec(m.Object(o.Fanin0.ID()), &out)
		}
	})
	for _, o := range out {
		o.MarkA = false
	}
	return out
}

func (m *Manager) dfsRec(o *Object, out *[]*Object) {
	if !o.IsNode() || o.MarkA {
		return
	}
	m.dfsRec(m.Object(o.Fanin0.ID()), out)
	m.dfsRec(m.Object(o.Fanin1.ID()), out)
	o.MarkA = true
	*out = append(*out, o)
}

// DfsNode returns a topological order of just root's cone.
func (m *Manager) DfsNode(root *Object) []*Object {
	out := make([]*Object, 0, 16)
	m.dfsRec(root, &out)
	for _, o := range out {
		o.MarkA = false
	}
	return out
}

// DagSize returns the number of And/Exor nodes in root's cone.
func (m *Manager) DagSize(root *Object) int {
	n := m.coneCountMark(root)
	m.coneUnmark(root)
	return n
}

func (m *Manager) coneCountMark(o *Object) int {
	if !o.IsNode() || o.MarkA {
		return 0
	}
	c := 1 + m.coneCountMark(m.Object(o.Fanin0.ID())) + m.coneCountMark(m.Object(o.Fanin1.ID()))
	o.MarkA = true
	return c
}

func (m *Manager) coneUnmark(o *Object) {
	if !o.IsNode() || !o.MarkA {
		return
	}
	m.coneUnmark(m.Object(o.Fanin0.ID()))
	m.coneUnmark(m.Object(o.Fanin1.ID()))
	o.MarkA = false
}

// dupChild resolves a source edge to its already-built counterpart in dst,
// building it (and memoizing the mapping in m's per-pass scratch table)
// if necessary.
func (m *Manager) dupChild(dst *Manager, e Edge) Edge {
	if e.ID() == m.const1ID {
		return dst.Const1().NotCond(e.IsComplement())
	}
	o := m.Object(e.ID())
	if o.IsNode() {
		return m.dupRec(dst, o).NotCond(e.IsComplement())
	}
	v := m.scratch[o.ID].(Edge)
	return v.NotCond(e.IsComplement())
}

func (m *Manager) dupRec(dst *Manager, o *Object) Edge {
	if v, ok := m.scratch[o.ID]; ok {
		return v.(Edge)
	}
	c0 := m.dupChild(dst, o.Fanin0)
	c1 := m.dupChild(dst, o.Fanin1)
	var e Edge
	if o.Kind == KindExor {
		e = dst.Exor(c0, c1)
	} else {
		e = dst.And(c0, c1)
	}
	m.scratch[o.ID] = e
	return e
}

// dupBody builds a fresh manager with m's Pi structure and, if ordered, an
// exact topological copy of every node; it leaves m's scratch table
// populated with the id -> Edge mapping for the caller (Dup/DupWithoutPOs)
// to attach Pos from.
func (m *Manager) dupBody(ordered bool) *Manager {
	dst := Start(len(m.objects))
	dst.exorCapture = m.exorCapture
	m.ClearScratch()
	m.ForEachPi(func(_ int, e Edge) {
		m.scratch[e.ID()] = dst.CreatePi()
	})
	if ordered {
		for _, o := range m.Dfs() {
			m.dupRec(dst, o)
		}
	}
	return dst
}

// Dup copies the manager into a new one. If ordered is true, nodes are
// rebuilt in the stable topological order of Dfs; otherwise they are built
// lazily in fanin-first recursive order starting from each Po.
func (m *Manager) Dup(ordered bool) *Manager {
	dst := m.dupBody(ordered)
	m.ForEachPo(func(_ int, e Edge) {
		po := m.Object(e.ID())
		dst.CreatePo(m.dupChild(dst, po.Fanin0))
	})
	m.ClearScratch()
	return dst
}

// DupWithoutPOs is Dup without attaching any primary outputs. It leaves m's
// scratch table holding the id -> Edge mapping, which the caller must clear
// when done. Balance calls it with ordered=false purely for its Pi-scratch
// setup, then builds its own (balanced, not copied) Po set node by node.
func (m *Manager) DupWithoutPOs(ordered bool) *Manager {
	return m.dupBody(ordered)
}

// Transfer copies the cone rooted at "root" (an edge belonging to m) into
// dst, reusing dst's first nVars primary inputs in place of m's first
// nVars.
func (m *Manager) Transfer(dst *Manager, root Edge, nVars int) Edge {
	if m == dst {
		return root
	}
	if root.ID() == m.const1ID {
		return dst.Const1().NotCond(root.IsComplement())
	}
	m.ClearScratch()
	for i := 0; i < nVars && i < len(m.pis); i++ {
		m.scratch[m.pis[i]] = dst.Pi(i)
	}
	res := m.dupChild(dst, root)
	m.ClearScratch()
	return res
}

// Compose substitutes primary input i with f throughout root's cone,
// rebuilding (and re-strashing) the affected nodes in place. If i does not
// name an existing primary input, root is returned unchanged.
func (m *Manager) Compose(root Edge, f Edge, i int) Edge {
	if i < 0 || i >= len(m.pis) {
		return root
	}
	m.ClearScratch()
	for idx, id := range m.pis {
		if idx == i {
			m.scratch[id] = f
		} else {
			m.scratch[id] = NewEdge(id, false)
		}
	}
	res := m.dupChild(m, root)
	m.ClearScratch()
	return res
}
