package aig

// strashKey is the canonical lookup key for a hashable (And/Exor) node:
// kind plus the ordered pair of regular fanin ids and their inversion bits.
// Invariant 2 (regular(fanin0).id < regular(fanin1).id) is enforced by the
// operator constructors in oper.go before a key is ever built here.
type strashKey struct {
	kind  Kind
	id0   int32
	id1   int32
	comp0 bool
	comp1 bool
}

func keyOf(kind Kind, f0, f1 Edge) strashKey {
	return strashKey{
		kind:  kind,
		id0:   f0.ID(),
		id1:   f1.ID(),
		comp0: f0.IsComplement(),
		comp1: f1.IsComplement(),
	}
}

// hash mixes the five key fields with large odd multipliers, matching the
// source's fixed xor-mix strash hash.
func (k strashKey) hash() uint64 {
	const (
		m0 = 0x9e3779b185ebca87
		m1 = 0xc2b2ae3d27d4eb4f
		m2 = 0x165667b19e3779f9
	)
	h := uint64(k.kind) * m0
	h ^= uint64(uint32(k.id0)) * m1
	h ^= uint64(uint32(k.id1)) * m2
	if k.comp0 {
		h ^= m1 >> 1
	}
	if k.comp1 {
		h ^= m2 >> 1
	}
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

// strashTable is a chained hash map from strashKey to the id of its
// representative object. Table size is always prime; it grows when the
// entry count reaches the table size, to the next prime at least twice the
// new entry count (invariant 1 of the data model is what this table
// preserves).
type strashTable struct {
	buckets [][]int32
	count   int
	mgr     *Manager
}

func newStrashTable(mgr *Manager) *strashTable {
	return &strashTable{
		buckets: make([][]int32, 97),
		mgr:     mgr,
	}
}

func (t *strashTable) slot(k strashKey) int {
	return int(k.hash() % uint64(len(t.buckets)))
}

// lookup returns the representative object id for k, or (0, false) if none
// is hashed yet.
func (t *strashTable) lookup(k strashKey) (int32, bool) {
	b := t.buckets[t.slot(k)]
	for _, id := range b {
		o := t.mgr.objects[id]
		if o.Kind == k.kind && o.Fanin0.ID() == k.id0 && o.Fanin1.ID() == k.id1 &&
			o.Fanin0.IsComplement() == k.comp0 && o.Fanin1.IsComplement() == k.comp1 {
			return id, true
		}
	}
	return 0, false
}

// insert adds id (whose fanins already form key k) to the table.
func (t *strashTable) insert(k strashKey, id int32) {
	if t.count+1 > len(t.buckets) {
		t.resize(nextPrime(2 * (t.count + 1)))
	}
	s := t.slot(k)
	t.buckets[s] = append(t.buckets[s], id)
	t.count++
}

// remove deletes id, hashed under k, from the table.
func (t *strashTable) remove(k strashKey, id int32) {
	s := t.slot(k)
	b := t.buckets[s]
	for i, v := range b {
		if v == id {
			b[i] = b[len(b)-1]
			t.buckets[s] = b[:len(b)-1]
			t.count--
			return
		}
	}
}

func (t *strashTable) resize(newSize int) {
	nb := make([][]int32, newSize)
	old := t.buckets
	t.buckets = nb
	for _, b := range old {
		for _, id := range b {
			o := t.mgr.objects[id]
			k := keyOf(o.Kind, o.Fanin0, o.Fanin1)
			s := t.slot(k)
			t.buckets[s] = append(t.buckets[s], id)
		}
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func nextPrime(n int) int {
	if n < 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}
