package marketplace

import "sync/atomic"

// reentrancyGuard is a single latch around the engine's mutating entry
// points. A collaborator that calls back into the engine mid-operation hits
// the set latch and is rejected; the outer operation then aborts through the
// collaborator's error return.
type reentrancyGuard struct {
	locked uint32
}

func (g *reentrancyGuard) enter() error {
	if !atomic.CompareAndSwapUint32(&g.locked, 0, 1) {
		return ErrReentrant
	}

	return nil
}

func (g *reentrancyGuard) exit() {
	atomic.StoreUint32(&g.locked, 0)
}
