package aig

// Manager owns every Object it creates: the object store, the strash
// table, the Pi/Po insertion-ordered arrays, and the traversal/mark
// bookkeeping that the rest of the package mutates in place.
//
// A Manager is not safe for concurrent use; per the single-threaded
// cooperative scheduling model, it is owned by one goroutine at a time.
type Manager struct {
	objects []*Object // dense, id-indexed; nil marks a recycled slot
	pool    fixedPool
	arena   *flexArena
	table   *strashTable

	pis []int32
	pos []int32

	created int
	deleted int
	nAnd    int
	nExor   int
	nLatch  int

	const1ID int32

	travID uint32

	exorCapture     bool
	fanoutEnabled   bool
	reverseEnabled  bool
	nextFanout0     []int32 // per id, link for this object's use of Fanin0's fanout list
	nextFanout1     []int32 // per id, link for this object's use of Fanin1's fanout list

	scratch map[int32]interface{}

	// Name is a free-form label for callers; the core never reads it.
	Name string
}

// Start allocates a fresh, empty manager with its constant-1 node created.
// hint is an optional size hint for the initial object-store capacity; 0
// picks a small default.
func Start(hint int) *Manager {
	if hint <= 0 {
		hint = 64
	}
	m := &Manager{
		objects: make([]*Object, 0, hint),
		arena:   newFlexArena(),
		scratch: make(map[int32]interface{}),
	}
	m.table = newStrashTable(m)

	c := m.pool.fetch()
	c.Kind = KindConst1
	c.Phase = true
	c.Fanin0 = NilEdge
	c.Fanin1 = NilEdge
	c.ID = m.allocID(c)
	m.const1ID = c.ID
	m.created++

	return m
}

// allocID appends o to the object store and returns its new id.
func (m *Manager) allocID(o *Object) int32 {
	id := int32(len(m.objects))
	o.fanoutHead = -1
	m.objects = append(m.objects, o)
	if m.fanoutEnabled {
		m.nextFanout0 = append(m.nextFanout0, -1)
		m.nextFanout1 = append(m.nextFanout1, -1)
	}
	return id
}

// Stop releases the manager's pools. The manager must not be used
// afterwards.
func (m *Manager) Stop() {
	m.assertMarksClean()
	m.pool.stop()
	m.arena.stop()
	m.objects = nil
	m.scratch = nil
}

// StartFrom creates a new, empty manager with the same number of primary
// inputs as src, in the same order; it does not copy any logic.
func StartFrom(src *Manager) *Manager {
	dst := Start(len(src.objects))
	dst.exorCapture = src.exorCapture
	for range src.pis {
		dst.CreatePi()
	}
	return dst
}

// EnableExorCapture turns on detection of the EXOR pattern inside And/Or
// construction (see Exor in oper.go). Per design note "EXOR capture", this
// must be decided before any hashable node is created; calling it after
// nodes exist panics.
func (m *Manager) EnableExorCapture() {
	if m.nAnd+m.nExor > 0 {
		panic("aig: EnableExorCapture called after nodes were created")
	}
	m.exorCapture = true
}

// EnableFanoutIndex turns on the optional reverse-edge index so that
// ForEachFanout can be used. It must be called before any node exists.
func (m *Manager) EnableFanoutIndex() {
	m.fanoutEnabled = true
	m.nextFanout0 = make([]int32, len(m.objects))
	m.nextFanout1 = make([]int32, len(m.objects))
	for i := range m.nextFanout0 {
		m.nextFanout0[i] = -1
		m.nextFanout1[i] = -1
	}
}

// EnableReverseLevels turns on the reverse-level (longest path to any PO)
// index. The index is recomputed only by UpdateReverseLevels in levels.go;
// Replace does not update it.
func (m *Manager) EnableReverseLevels() {
	m.reverseEnabled = true
}

// Object returns the object stored at id. It panics if id is out of range
// or the slot was recycled, since every live Edge the manager hands out
// must resolve.
func (m *Manager) Object(id int32) *Object {
	o := m.objects[id]
	if o == nil {
		panic("aig: dereference of deleted object")
	}
	return o
}

// Const1 returns the edge for the manager's constant-1 node.
func (m *Manager) Const1() Edge { return NewEdge(m.const1ID, false) }

// Const0 returns the edge for the manager's constant-0 value.
func (m *Manager) Const0() Edge { return NewEdge(m.const1ID, true) }

// PiNum, PoNum, LatchNum, BufNum, AndNum, ExorNum, ObjNum, ObjIdMax are the
// manager's size queries.
func (m *Manager) PiNum() int    { return len(m.pis) }
func (m *Manager) PoNum() int    { return len(m.pos) }
func (m *Manager) LatchNum() int { return m.nLatch }

// BufNum counts live Buf objects by scanning the object store: unlike
// Pi/Po/Latch, which are only ever appended to their own arrays and never
// individually deleted, a Buf can be swept by Cleanup (e.g. SeqStrash's
// buffer-chasing pass), so no append-only counter can stay accurate.
func (m *Manager) BufNum() int {
	n := 0
	m.ForEachObj(func(o *Object) {
		if o.Kind == KindBuf {
			n++
		}
	})
	return n
}

func (m *Manager) AndNum() int  { return m.nAnd }
func (m *Manager) ExorNum() int { return m.nExor }
func (m *Manager) ObjNum() int  { return m.created - m.deleted }

// ObjIdMax returns one past the highest id ever allocated.
func (m *Manager) ObjIdMax() int { return len(m.objects) }

// GetCost is the node-count cost metric used by rewriting heuristics: the
// number of And and Exor nodes.
func (m *Manager) GetCost() int { return m.nAnd + m.nExor }

// Pi returns the i-th primary input's edge, in creation order.
func (m *Manager) Pi(i int) Edge { return NewEdge(m.pis[i], false) }

// Po returns the i-th primary output object's edge (regular, not its
// driver).
func (m *Manager) Po(i int) Edge { return NewEdge(m.pos[i], false) }

// IthVar is an alias for Pi, matching the source's naming.
func (m *Manager) IthVar(i int) Edge { return m.Pi(i) }

// ForEachPi calls fn with each primary input's edge, in creation order.
func (m *Manager) ForEachPi(fn func(i int, e Edge)) {
	for i, id := range m.pis {
		fn(i, NewEdge(id, false))
	}
}

// ForEachPo calls fn with each primary output's edge, in creation order.
func (m *Manager) ForEachPo(fn func(i int, e Edge)) {
	for i, id := range m.pos {
		fn(i, NewEdge(id, false))
	}
}

// ForEachObj calls fn with every live object in the store, skipping
// recycled slots.
func (m *Manager) ForEachObj(fn func(o *Object)) {
	for _, o := range m.objects {
		if o != nil {
			fn(o)
		}
	}
}

// ForEachNode calls fn with every live And/Exor object.
func (m *Manager) ForEachNode(fn func(o *Object)) {
	for _, o := range m.objects {
		if o != nil && o.IsNode() {
			fn(o)
		}
	}
}

// Scratch returns the manager's per-pass side table, keyed by object id.
// It replaces the source's aliased void* data field (design note "The data
// scratch pointer"): callers must Clear it before returning, the same
// discipline the source applies to cleanData.
func (m *Manager) Scratch() map[int32]interface{} { return m.scratch }

// ClearScratch empties the per-pass side table.
func (m *Manager) ClearScratch() {
	for k := range m.scratch {
		delete(m.scratch, k)
	}
}

// ForEachFanout calls fn with every object whose Fanin0 or Fanin1 (or,
// for a Po/Latch, whose driver) is e's target. EnableFanoutIndex must have
// been called first, or this returns without visiting anything.
func (m *Manager) ForEachFanout(e Edge, fn func(o *Object)) {
	if !m.fanoutEnabled {
		return
	}
	id := e.Regular().ID()
	cur := m.objects[id].fanoutHead
	for cur != -1 {
		fo := m.objects[cur]
		fn(fo)
		if fo.Fanin0.ID() == id {
			cur = m.nextFanout0[fo.ID]
		} else {
			cur = m.nextFanout1[fo.ID]
		}
	}
}

func (m *Manager) linkFanout(targetID, userID int32, slot0 bool) {
	if !m.fanoutEnabled {
		return
	}
	t := m.objects[targetID]
	if slot0 {
		m.nextFanout0[userID] = t.fanoutHead
	} else {
		m.nextFanout1[userID] = t.fanoutHead
	}
	t.fanoutHead = userID
}

func (m *Manager) unlinkFanout(targetID, userID int32, slot0 bool) {
	if !m.fanoutEnabled {
		return
	}
	t := m.objects[targetID]
	// walk the list and splice userID out
	prevIsSlot0 := true
	cur := t.fanoutHead
	var prevID int32 = -1
	for cur != -1 {
		fo := m.objects[cur]
		curIsSlot0 := fo.Fanin0.ID() == targetID
		next := m.nextFanout1[cur]
		if curIsSlot0 {
			next = m.nextFanout0[cur]
		}
		if cur == userID && curIsSlot0 == slot0 {
			if prevID == -1 {
				t.fanoutHead = next
			} else if prevIsSlot0 {
				m.nextFanout0[prevID] = next
			} else {
				m.nextFanout1[prevID] = next
			}
			return
		}
		prevID = cur
		prevIsSlot0 = curIsSlot0
		cur = next
	}
}

func (m *Manager) assertMarksClean() {
	for _, o := range m.objects {
		if o == nil {
			continue
		}
		if o.MarkA || o.MarkB {
			panic("aig: mark bits dirty at manager boundary")
		}
	}
}
