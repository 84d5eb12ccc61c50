package scene

import "math/cmplx"

// LockOn remembers which link of the chain the camera is following.
type LockOn struct {
	index  int
	locked bool
	radius float64
}

// NewLockOn returns an unlocked selection. Picks farther than radius world
// units from every link are ignored.
func NewLockOn(radius float64) *LockOn {
	return &LockOn{radius: radius}
}

// Toggle releases the lock, or locks onto the last of n links.
func (l *LockOn) Toggle(n int) {
	if l.locked || n == 0 {
		l.locked = false
		return
	}
	l.index = n - 1
	l.locked = true
}

// Pick locks onto the link closest to p if it lies within the pick radius.
// It reports whether the selection changed.
func (l *LockOn) Pick(chain []complex128, p complex128) bool {
	best := -1
	bestDist := l.radius
	for i, c := range chain {
		d := cmplx.Abs(c - p)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return false
	}
	l.index = best
	l.locked = true
	return true
}

func (l *LockOn) Release() {
	l.locked = false
}

func (l *LockOn) Index() (int, bool) {
	return l.index, l.locked
}

// Target returns the locked link of chain, if any.
func (l *LockOn) Target(chain []complex128) (complex128, bool) {
	if !l.locked || l.index >= len(chain) {
		return 0, false
	}
	return chain[l.index], true
}
