package aig

// travIDWrapLimit is the point at which the traversal-id counter is reset
// rather than incremented further, per the 2^30-1 bound in the source.
const travIDWrapLimit = 1<<30 - 1

// IncrementTravID bumps the manager's traversal-id counter, giving the
// caller a fresh "visited this pass" value for O(1) DFS marking without
// allocating a visited set. If the counter would wrap, every object's
// TravID is first reset to zero in one sweep.
func (m *Manager) IncrementTravID() {
	if m.travID >= travIDWrapLimit {
		for _, o := range m.objects {
			if o != nil {
				o.TravID = 0
			}
		}
		m.travID = 0
	}
	m.travID++
}

// SetTravIDCurrent stamps o as visited in the current pass.
func (m *Manager) SetTravIDCurrent(o *Object) { o.TravID = m.travID }

// IsTravIDCurrent reports whether o was already stamped in the current
// pass.
func (m *Manager) IsTravIDCurrent(o *Object) bool { return o.TravID == m.travID }

// TravID returns the manager's current traversal id.
func (m *Manager) TravID() uint32 { return m.travID }
