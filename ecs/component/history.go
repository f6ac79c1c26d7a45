package component

import "github.com/jakecoffman/cp"

// History is a fixed-capacity ring buffer of vector samples. Pushing onto a
// full buffer evicts the oldest sample; nothing allocates after construction.
type History struct {
	samples []cp.Vector
	head    int
	size    int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{samples: make([]cp.Vector, capacity)}
}

func (h *History) Cap() int {
	return len(h.samples)
}

func (h *History) Len() int {
	return h.size
}

func (h *History) Full() bool {
	return h.size == len(h.samples)
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(v cp.Vector) {
	h.samples[h.head] = v
	h.head = (h.head + 1) % len(h.samples)
	if h.size < len(h.samples) {
		h.size++
	}
}

// Oldest returns the earliest retained sample.
func (h *History) Oldest() (cp.Vector, bool) {
	if h.size == 0 {
		return cp.Vector{}, false
	}
	if h.size < len(h.samples) {
		return h.samples[0], true
	}
	return h.samples[h.head], true
}

// Latest returns the most recent sample.
func (h *History) Latest() (cp.Vector, bool) {
	if h.size == 0 {
		return cp.Vector{}, false
	}
	idx := (h.head - 1 + len(h.samples)) % len(h.samples)
	return h.samples[idx], true
}

// Reset discards all samples but keeps the allocation.
func (h *History) Reset() {
	h.head = 0
	h.size = 0
}
