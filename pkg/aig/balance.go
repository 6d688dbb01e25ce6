package aig

import "sort"

// Balance produces a functionally equivalent manager whose depth is
// minimized: for each Po it collects the maximal same-kind supergate under
// its driver and reassembles it as a balanced, sharing-aware tree. Leaves
// recurse through the same process, so the whole graph is rebuilt
// bottom-up exactly once.
func (m *Manager) Balance() *Manager {
	dst := m.DupWithoutPOs(false)
	m.ForEachPo(func(_ int, e Edge) {
		po := m.Object(e.ID())
		dst.CreatePo(m.balanceBuild(dst, po.Fanin0))
	})
	m.ClearScratch()
	return dst
}

// balanceBuild resolves a source edge to its balanced counterpart in dst,
// memoizing the mapping by source object id in m's scratch table (cleared
// by the caller once the whole Po set has been built).
func (m *Manager) balanceBuild(dst *Manager, e Edge) Edge {
	if e.ID() == m.const1ID {
		return dst.Const1().NotCond(e.IsComplement())
	}
	o := m.Object(e.ID())
	if !o.IsNode() {
		v := m.scratch[o.ID].(Edge)
		return v.NotCond(e.IsComplement())
	}
	if v, ok := m.scratch[o.ID]; ok {
		return v.(Edge).NotCond(e.IsComplement())
	}

	leaves, collapsed := m.collectSupergate(o)
	if collapsed {
		res := dst.Const0()
		m.scratch[o.ID] = res
		return res.NotCond(e.IsComplement())
	}

	built := make([]Edge, len(leaves))
	for i, lf := range leaves {
		built[i] = m.balanceBuild(dst, lf)
	}

	res := reassemble(dst, built, o.Kind)
	m.scratch[o.ID] = res
	return res.NotCond(e.IsComplement())
}

// collectSupergate gathers the maximal cone under o whose internal nodes
// all share o's kind, stopping descent at a node of the wrong kind, an
// inverted edge into an AND of the same kind, or a shared node (Refs>1).
// If the same leaf id appears with both polarities the supergate is
// degenerate (an AND of x and ¬x somewhere inside) and collapses to
// const0; collapsed is then true and leaves is meaningless.
func (m *Manager) collectSupergate(root *Object) (leaves []Edge, collapsed bool) {
	kind := root.Kind
	present := map[int32]bool{}
	polarity := map[int32]bool{}

	var collect func(child Edge)
	collect = func(child Edge) {
		co := m.Object(child.ID())
		internal := co.IsNode() && co.Kind == kind && co.Refs <= 1 &&
			(kind == KindExor || !child.IsComplement())
		if internal {
			collect(co.Fanin0)
			collect(co.Fanin1)
			return
		}
		id := child.ID()
		comp := child.IsComplement()
		if present[id] {
			if polarity[id] != comp {
				collapsed = true
			}
			return
		}
		present[id] = true
		polarity[id] = comp
		leaves = append(leaves, child)
	}

	collect(root.Fanin0)
	collect(root.Fanin1)
	return leaves, collapsed && kind == KindAnd
}

// reassemble rebuilds a supergate's leaves (already built in dst) into a
// balanced tree: sort by level descending, then repeatedly combine the two
// lowest-level leaves, choosing among same-level candidates the pairing
// that reuses an already-hashed node when one exists.
func reassemble(dst *Manager, edges []Edge, kind Kind) Edge {
	if len(edges) == 0 {
		return dst.Const0()
	}
	if len(edges) == 1 {
		return edges[0]
	}

	lvl := func(e Edge) uint32 { return dst.Object(e.ID()).Level }
	sort.Slice(edges, func(i, j int) bool { return lvl(edges[i]) > lvl(edges[j]) })

	for len(edges) > 1 {
		n := len(edges)
		secondLast := lvl(edges[n-2])
		lb := n - 2
		for lb > 0 && lvl(edges[lb-1]) == secondLast {
			lb--
		}

		best := n - 2
		for j := lb; j < n-1; j++ {
			if wouldHash(dst, edges[n-1], edges[j], kind) {
				best = j
				break
			}
		}

		a, b := edges[n-1], edges[best]
		rest := make([]Edge, 0, n-2)
		for i := 0; i < n-1; i++ {
			if i != best {
				rest = append(rest, edges[i])
			}
		}

		var combined Edge
		if kind == KindExor {
			combined = dst.Exor(a, b)
		} else {
			combined = dst.And(a, b)
		}

		cl := lvl(combined)
		pos := len(rest)
		for i, e := range rest {
			if lvl(e) < cl {
				pos = i
				break
			}
		}
		rest = append(rest, Edge{})
		copy(rest[pos+1:], rest[pos:])
		rest[pos] = combined
		edges = rest
	}
	return edges[0]
}

// wouldHash reports whether combining a and b under kind would return an
// already-existing node rather than creating a new one, used to prefer
// sharing-friendly pairings during reassembly.
func wouldHash(dst *Manager, a, b Edge, kind Kind) bool {
	if a.Equal(b) || a.Equal(b.Not()) {
		return false
	}
	x, y := a, b
	if x.ID() > y.ID() {
		x, y = y, x
	}
	_, ok := dst.table.lookup(keyOf(kind, x, y))
	return ok
}
