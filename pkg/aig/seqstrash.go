package aig

// SeqStrash converts the last nLatches (Pi, Po) pairs of m into explicit
// Latch nodes, then iteratively chases and removes the resulting Buf
// chains until a fixed point. inits holds each new latch's initial value
// (0, 1, or 2 for don't-care) and must have length nLatches.
//
// The termination guarantee for sequential DFS over all-buffered register
// loops is not provable from the original algorithm alone; this
// implementation resolves it by bounding the buffer-chase at ObjIdMax
// steps per node (any node
// whose chase does not terminate within that bound is "junk" belonging to
// an all-buffered cycle and is left untouched) and bounding the outer
// fixed-point loop at ObjIdMax iterations, surfacing an overrun as a
// CheckIssue rather than looping forever.
func (m *Manager) SeqStrash(nLatches int, inits []uint8) *CheckReport {
	report := &CheckReport{}
	if nLatches == 0 {
		return report
	}
	if len(inits) != nLatches {
		report.add("seqstrash-bad-inits", -1, "inits length does not match nLatches")
		return report
	}

	m.convertLatches(nLatches, inits)

	bound := m.ObjIdMax()
	if bound < 1 {
		bound = 1
	}

	firstIteration := true
	for iter := 0; iter < bound; iter++ {
		if firstIteration {
			m.Cleanup()
			firstIteration = false
		}

		order := m.Dfs()
		changed := false

		for _, n := range order {
			f0Buf := m.isBuf(n.Fanin0)
			f1Buf := (n.Kind == KindAnd || n.Kind == KindExor) && m.isBuf(n.Fanin1)
			if !f0Buf && !f1Buf {
				continue
			}

			nf0, ok0 := m.objRealBounded(n.Fanin0, bound)
			if !ok0 {
				continue // junk: part of an all-buffered cycle, leave untouched
			}
			nf1 := n.Fanin1
			if n.Kind == KindAnd || n.Kind == KindExor {
				var ok1 bool
				nf1, ok1 = m.objRealBounded(n.Fanin1, bound)
				if !ok1 {
					continue
				}
			}

			var newEdge Edge
			switch n.Kind {
			case KindExor:
				newEdge = m.Exor(nf0, nf1)
			case KindAnd:
				newEdge = m.And(nf0, nf1)
			default:
				newEdge = nf0
			}

			if !newEdge.Equal(NewEdge(n.ID, false)) {
				m.Replace(n, newEdge, false)
				changed = true
			}
		}

		m.ForEachObj(func(o *Object) {
			if (o.Kind != KindPo && o.Kind != KindLatch) || !m.isBuf(o.Fanin0) {
				return
			}
			nf0, ok := m.objRealBounded(o.Fanin0, bound)
			if !ok {
				return
			}
			m.PatchFanin0(o, nf0)
			changed = true
		})

		if !changed {
			break
		}
		if iter == bound-1 {
			report.add("seqstrash-loop-bound", -1, "buffer-removal fixed point not reached within the node-count bound")
		}
	}

	m.Cleanup()

	final := m.Check()
	report.Issues = append(report.Issues, final.Issues...)
	return report
}

func (m *Manager) isBuf(e Edge) bool {
	if e.IsNil() {
		return false
	}
	o := m.objects[e.ID()]
	return o != nil && o.Kind == KindBuf
}

// objRealBounded is ObjReal with a hop limit; it reports ok=false if the
// chase does not reach a non-Buf object within limit hops (a dangling
// all-buffered cycle).
func (m *Manager) objRealBounded(e Edge, limit int) (Edge, bool) {
	comp := e.IsComplement()
	id := e.ID()
	for i := 0; i < limit; i++ {
		o := m.objects[id]
		if o.Kind != KindBuf {
			return NewEdge(id, comp), true
		}
		comp = comp != o.Fanin0.IsComplement()
		id = o.Fanin0.ID()
	}
	return Edge{}, false
}

// convertLatches performs the one-shot structural conversion: the last
// nLatches Po/Pi pairs become a Latch driven by the Po's former driver,
// with the Pi re-typed into a Buf driven by the new latch.
func (m *Manager) convertLatches(nLatches int, inits []uint8) {
	nPo := len(m.pos)
	nPi := len(m.pis)
	for i := 0; i < nLatches; i++ {
		poID := m.pos[nPo-nLatches+i]
		piID := m.pis[nPi-nLatches+i]
		po := m.Object(poID)
		pi := m.Object(piID)

		driver := po.Fanin0

		latch := m.pool.fetch()
		latch.Kind = KindLatch
		latch.ID = m.allocID(latch)
		m.created++
		latch.InitVal = inits[i]
		m.connectFanin(latch, 0, driver)
		latch.Fanin1 = NilEdge
		latch.Level = 0
		latch.Phase = m.recomputePhase(latch)
		m.nLatch++

		m.disconnectFanin(po, 0)
		m.objects[po.ID] = nil
		m.pool.recycle(po)
		m.deleted++

		pi.Kind = KindBuf
		m.connectFanin(pi, 0, NewEdge(latch.ID, false))
		pi.Fanin1 = NilEdge
		pi.Level = m.recomputeLevel(pi)
		pi.Phase = m.recomputePhase(pi)
	}
	m.pos = m.pos[:nPo-nLatches]
	m.pis = m.pis[:nPi-nLatches]
}
