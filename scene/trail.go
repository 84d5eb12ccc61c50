package scene

import "sync"

// Trail keeps the most recent tips of the chain, overwriting the oldest when
// full.
type Trail struct {
	buf  []complex128
	size int
	w    int // write position
	len  int
	mu   sync.Mutex
}

func NewTrail(size int) *Trail {
	if size < 0 {
		size = 0
	}
	return &Trail{
		buf:  make([]complex128, size),
		size: size,
	}
}

func (tr *Trail) Push(p complex128) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.size == 0 {
		return
	}
	tr.buf[tr.w] = p
	tr.w = (tr.w + 1) % tr.size
	if tr.len < tr.size {
		tr.len++
	}
}

// Points returns the stored tips, oldest first.
func (tr *Trail) Points() []complex128 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.len == 0 {
		return nil
	}
	out := make([]complex128, tr.len)
	start := (tr.w - tr.len + tr.size) % tr.size
	for i := range out {
		out[i] = tr.buf[(start+i)%tr.size]
	}
	return out
}

func (tr *Trail) Len() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.len
}

func (tr *Trail) Clear() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.w = 0
	tr.len = 0
}
