package aig

// computeLevel returns the combinational depth of a node given its kind
// and the levels of its two fanins. EXOR costs one extra level over AND,
// matching the AND/OR/inverter decomposition cost model of the source.
func computeLevel(kind Kind, l0, l1 uint32) uint32 {
	max := l0
	if l1 > max {
		max = l1
	}
	lvl := max + 1
	if kind == KindExor {
		lvl++
	}
	return lvl
}

// recomputeLevel and recomputePhase return o's level/phase as computed from
// its current fanins, looking up those fanins through m; callers store them.
func (m *Manager) recomputeLevel(o *Object) uint32 {
	var l0, l1 uint32
	if !o.Fanin0.IsNil() {
		l0 = m.Object(o.Fanin0.ID()).Level
	}
	if !o.Fanin1.IsNil() {
		l1 = m.Object(o.Fanin1.ID()).Level
	}
	switch o.Kind {
	case KindAnd, KindExor:
		return computeLevel(o.Kind, l0, l1)
	case KindBuf, KindPo:
		return l0
	default:
		return 0
	}
}

func (m *Manager) faninPhase(e Edge) bool {
	if e.IsNil() {
		return false
	}
	p := m.Object(e.ID()).Phase
	return p != e.IsComplement()
}

func (m *Manager) recomputePhase(o *Object) bool {
	switch o.Kind {
	case KindConst1:
		return true
	case KindPi:
		return false
	case KindAnd:
		return m.faninPhase(o.Fanin0) && m.faninPhase(o.Fanin1)
	case KindExor:
		return m.faninPhase(o.Fanin0) != m.faninPhase(o.Fanin1)
	case KindLatch:
		// a latch's output in the initial frame is its initial value
		return o.InitVal == 1
	case KindBuf, KindPo:
		return m.faninPhase(o.Fanin0)
	default:
		return false
	}
}

// CountLevels returns the deepest PO level across the whole manager.
func (m *Manager) CountLevels() uint32 {
	var max uint32
	for _, id := range m.pos {
		l := m.Object(id).Level
		if l > max {
			max = l
		}
	}
	return max
}

// UpdateReverseLevels recomputes the reverse-level (longest path to any PO)
// of every live node from scratch. EnableReverseLevels must have been
// called first.
func (m *Manager) UpdateReverseLevels() {
	if !m.reverseEnabled {
		return
	}
	m.ForEachObj(func(o *Object) { o.RevLevel = 0 })
	order := m.Dfs()
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		bump := func(e Edge) {
			if e.IsNil() {
				return
			}
			f := m.Object(e.ID())
			if !f.IsNode() {
				return
			}
			if n.RevLevel+1 > f.RevLevel {
				f.RevLevel = n.RevLevel + 1
			}
		}
		bump(n.Fanin0)
		if n.Kind == KindAnd || n.Kind == KindExor {
			bump(n.Fanin1)
		}
	}
	for _, id := range m.pos {
		_ = id // POs themselves stay at reverse level 0 by definition
	}
}

// updateLevelFixpoint recomputes o's level; if it changed, it propagates the
// update forward until no further level changes. With the fanout index
// enabled this walks only o's fanout cone; without it there is no way to
// find o's consumers directly, so it falls back to relevelizeAll. The level
// invariant holds either way — Replace (its only caller) never skips this.
func (m *Manager) updateLevelFixpoint(o *Object) {
	newLevel := m.recomputeLevel(o)
	if newLevel == o.Level {
		return
	}
	o.Level = newLevel
	if m.fanoutEnabled {
		m.ForEachFanout(NewEdge(o.ID, false), func(fo *Object) {
			m.updateLevelFixpoint(fo)
		})
		return
	}
	m.relevelizeAll()
}

// relevelizeAll recomputes every live node's level from scratch. A single
// Dfs-ordered pass suffices for a pure And/Exor graph, but Dfs does not
// walk through Buf nodes (IsNode is false for a Buf, so dfsRec stops at
// one), and a Buf's own fanin can point in either id direction after a
// Replace. So the And/Exor pass and the Buf/Po pass are run together in a
// fixed point bounded by ObjIdMax — the same termination discipline
// SeqStrash's buffer chase uses — until one full round changes nothing.
func (m *Manager) relevelizeAll() {
	bound := m.ObjIdMax()
	if bound < 1 {
		bound = 1
	}
	for iter := 0; iter < bound; iter++ {
		changed := false
		for _, n := range m.Dfs() {
			if lvl := m.recomputeLevel(n); lvl != n.Level {
				n.Level = lvl
				changed = true
			}
		}
		m.ForEachObj(func(o *Object) {
			if o.Kind != KindBuf && o.Kind != KindPo {
				return
			}
			if lvl := m.recomputeLevel(o); lvl != o.Level {
				o.Level = lvl
				changed = true
			}
		})
		if !changed {
			break
		}
	}
}
