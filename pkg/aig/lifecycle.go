package aig

// CreatePi allocates a fresh primary input and appends it to the manager's
// Pi array.
func (m *Manager) CreatePi() Edge {
	o := m.pool.fetch()
	o.Kind = KindPi
	o.Fanin0 = NilEdge
	o.Fanin1 = NilEdge
	o.ID = m.allocID(o)
	m.pis = append(m.pis, o.ID)
	m.created++
	return NewEdge(o.ID, false)
}

// CreatePo allocates a fresh primary output driven by driver and appends it
// to the manager's Po array.
func (m *Manager) CreatePo(driver Edge) Edge {
	o := m.pool.fetch()
	o.Kind = KindPo
	o.ID = m.allocID(o)
	o.Fanin1 = NilEdge
	m.connectFanin(o, 0, driver)
	o.Level = m.recomputeLevel(o)
	o.Phase = m.recomputePhase(o)
	m.pos = append(m.pos, o.ID)
	m.created++
	return NewEdge(o.ID, false)
}

// connectFanin sets o's fanin slot (0 or 1) to e, bumping e's target's
// reference count and, if enabled, threading the fanout index.
func (m *Manager) connectFanin(o *Object, slot int, e Edge) {
	if slot == 0 {
		o.Fanin0 = e
	} else {
		o.Fanin1 = e
	}
	if e.IsNil() {
		return
	}
	t := m.Object(e.ID())
	t.Refs++
	m.linkFanout(e.ID(), o.ID, slot == 0)
}

// disconnectFanin clears o's fanin slot, dropping the target's reference
// count and unlinking the fanout index entry.
func (m *Manager) disconnectFanin(o *Object, slot int) {
	var e Edge
	if slot == 0 {
		e = o.Fanin0
	} else {
		e = o.Fanin1
	}
	if e.IsNil() {
		return
	}
	if t := m.objects[e.ID()]; t != nil {
		t.Refs--
		m.unlinkFanout(e.ID(), o.ID, slot == 0)
	}
	if slot == 0 {
		o.Fanin0 = NilEdge
	} else {
		o.Fanin1 = NilEdge
	}
}

// createHashed looks up (kind, f0, f1) in the strash table, returning the
// existing representative if one exists, or building and hashing a new
// node. Callers (oper.go) are responsible for constant folding, fanin
// dedup, and sorting f0/f1 into canonical order before calling this.
func (m *Manager) createHashed(kind Kind, f0, f1 Edge) Edge {
	k := keyOf(kind, f0, f1)
	if id, ok := m.table.lookup(k); ok {
		return NewEdge(id, false)
	}
	o := m.pool.fetch()
	o.Kind = kind
	o.ID = m.allocID(o)
	m.connectFanin(o, 0, f0)
	m.connectFanin(o, 1, f1)
	o.Level = m.recomputeLevel(o)
	o.Phase = m.recomputePhase(o)
	m.table.insert(k, o.ID)
	m.created++
	if kind == KindExor {
		m.nExor++
	} else {
		m.nAnd++
	}
	return NewEdge(o.ID, false)
}

func (m *Manager) countDec(k Kind) {
	switch k {
	case KindAnd:
		m.nAnd--
	case KindExor:
		m.nExor--
	}
}

// PatchFanin0 retargets only o's first fanin, used by sequential
// strashing's Po/Latch rewiring (it never changes o's kind or id).
func (m *Manager) PatchFanin0(o *Object, newEdge Edge) {
	m.disconnectFanin(o, 0)
	m.connectFanin(o, 0, newEdge)
	o.Level = m.recomputeLevel(o)
	o.Phase = m.recomputePhase(o)
}

// Replace rewires every fanout of old (by keeping old's object id stable)
// to denote newEdge instead. If newEdge is complemented, already
// referenced elsewhere, or (when nodesOnly is set) is not a pure And/Exor
// node, old becomes a Buf driving newEdge; otherwise old is re-typed in
// place to newEdge's kind and fanins, and newEdge's original object is
// deleted. This is the only path by which structural rewriting takes
// effect: every existing fanout of old already references old's id and
// needs no patching.
func (m *Manager) Replace(old *Object, newEdge Edge, nodesOnly bool) {
	if old.ID == newEdge.ID() && !newEdge.IsComplement() {
		return // replace(n, n) is a no-op
	}

	newObj := m.Object(newEdge.ID())
	useBuf := newEdge.IsComplement() || newObj.Refs > 0 ||
		(nodesOnly && !newObj.IsNode())

	// detach old from whatever it currently is
	if old.Kind.IsHashable() {
		m.table.remove(keyOf(old.Kind, old.Fanin0, old.Fanin1), old.ID)
	}
	m.disconnectFanin(old, 0)
	if old.Kind == KindAnd || old.Kind == KindExor {
		m.disconnectFanin(old, 1)
	}
	m.countDec(old.Kind)

	if useBuf {
		old.Kind = KindBuf
		m.connectFanin(old, 0, newEdge)
		old.Fanin1 = NilEdge
	} else {
		if newObj.Kind.IsHashable() {
			m.table.remove(keyOf(newObj.Kind, newObj.Fanin0, newObj.Fanin1), newObj.ID)
		}
		f0, f1 := newObj.Fanin0, newObj.Fanin1
		m.disconnectFanin(newObj, 0)
		m.disconnectFanin(newObj, 1)
		m.countDec(newObj.Kind)

		old.Kind = newObj.Kind
		m.connectFanin(old, 0, f0)
		m.connectFanin(old, 1, f1)
		switch old.Kind {
		case KindExor:
			m.nExor++
		default:
			m.nAnd++
		}
		if old.Kind.IsHashable() {
			m.table.insert(keyOf(old.Kind, old.Fanin0, old.Fanin1), old.ID)
		}

		m.objects[newObj.ID] = nil
		m.pool.recycle(newObj)
		m.deleted++
	}

	m.updateLevelFixpoint(old)
	old.Phase = m.recomputePhase(old)
}

// DeleteRec removes o and recursively removes any former fanin whose
// reference count drops to zero and which is not a terminal (the maximum
// fanout-free cone of o).
func (m *Manager) DeleteRec(o *Object) {
	m.deleteRec(o, true)
}

func (m *Manager) deleteRec(o *Object, freeSlot bool) {
	f0, f1 := o.Fanin0, o.Fanin1
	hasTwo := o.Kind == KindAnd || o.Kind == KindExor

	if o.Kind.IsHashable() {
		m.table.remove(keyOf(o.Kind, o.Fanin0, o.Fanin1), o.ID)
	}
	m.disconnectFanin(o, 0)
	if hasTwo {
		m.disconnectFanin(o, 1)
	}
	m.countDec(o.Kind)

	if freeSlot {
		m.objects[o.ID] = nil
		m.pool.recycle(o)
		m.deleted++
	}

	for _, f := range [2]Edge{f0, f1} {
		if f.IsNil() {
			continue
		}
		t := m.objects[f.ID()]
		if t == nil || t.IsTerminal() {
			continue
		}
		if t.Refs == 0 {
			m.deleteRec(t, true)
		}
	}
}

// Cleanup sweeps every non-terminal object whose reference count is zero
// and removes it (and, recursively, its own now-dangling fanins). It
// returns the total number of objects removed, including ones only freed
// as a cascade of another sweep hit's MFFC.
func (m *Manager) Cleanup() int {
	before := m.deleted
	for _, o := range m.objects {
		if o == nil || o.IsTerminal() {
			continue
		}
		if o.Refs == 0 {
			m.deleteRec(o, true)
		}
	}
	return m.deleted - before
}
