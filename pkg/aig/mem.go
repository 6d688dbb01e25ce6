package aig

// fixedPool is a free-list recycler for *Object blocks. AIG objects are all
// the same size, so a manager never returns objects to Go's allocator
// individually: deleted objects are pushed onto a free list and the next
// Fetch reuses one, zeroed, in amortized O(1).
type fixedPool struct {
	free []*Object
}

// fetch returns a zeroed Object, either recycled from the free list or
// freshly allocated.
func (p *fixedPool) fetch() *Object {
	n := len(p.free)
	if n == 0 {
		return &Object{}
	}
	o := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	*o = Object{}
	return o
}

// recycle returns a block to the free list. The caller must not hold any
// other reference to b afterwards.
func (p *fixedPool) recycle(b *Object) {
	p.free = append(p.free, b)
}

// stop releases every recycled block, letting the garbage collector reclaim
// them; it is the "bulk release on pool stop" the fixed pool promises.
func (p *fixedPool) stop() {
	p.free = nil
}

// flexArena is a bump allocator for variable-sized auxiliary data (cut leaf
// lists, truth-table words): it grows by geometrically larger pages,
// supports only bulk reset, and never frees individual allocations.
type flexArena struct {
	pages   [][]uint64
	cur     []uint64
	used    int
	pageLen int
}

const flexArenaMinPage = 1 << 12 // words

func newFlexArena() *flexArena {
	return &flexArena{pageLen: flexArenaMinPage}
}

// fetch returns nWords of uint64 storage, word-aligned by construction (the
// backing type is already uint64). Blocks carved from a freshly allocated
// page are zeroed; blocks carved from the page kept by restart are not.
func (a *flexArena) fetch(nWords int) []uint64 {
	if a.cur == nil || a.used+nWords > len(a.cur) {
		pageLen := a.pageLen
		if nWords > pageLen {
			pageLen = nWords
		}
		a.cur = make([]uint64, pageLen)
		a.pages = append(a.pages, a.cur)
		a.used = 0
		a.pageLen *= 2
	}
	block := a.cur[a.used : a.used+nWords : a.used+nWords]
	a.used += nWords
	return block
}

// restart resets the bump pointer to the start of the first page, keeping
// only that page for reuse; later pages are dropped and fetch allocates new
// ones as needed. It does not zero the kept page, so blocks fetched from it
// after a restart can hold data written before the restart.
func (a *flexArena) restart() {
	if len(a.pages) == 0 {
		return
	}
	a.pages = a.pages[:1]
	a.cur = a.pages[0]
	a.used = 0
	a.pageLen = flexArenaMinPage * 2
}

// stop frees all pages.
func (a *flexArena) stop() {
	a.pages = nil
	a.cur = nil
	a.used = 0
	a.pageLen = flexArenaMinPage
}
