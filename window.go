package lz77

// A Window is the search buffer: a fixed-capacity ring of the most
// recently encoded symbols. Appending to a full Window evicts the oldest
// symbols.
type Window[S comparable] struct {
	buf   []S
	start int // index in buf of the oldest symbol
	n     int
}

// NewWindow returns an empty Window that holds up to capacity symbols.
// A capacity of 0 gives a Window that never retains anything.
func NewWindow[S comparable](capacity int) *Window[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Window[S]{buf: make([]S, capacity)}
}

// Cap returns the capacity of w.
func (w *Window[S]) Cap() int {
	return len(w.buf)
}

// Len returns the number of symbols in w.
func (w *Window[S]) Len() int {
	return w.n
}

// At returns the i'th symbol, counting from the oldest.
func (w *Window[S]) At(i int) S {
	if i < 0 || i >= w.n {
		panic("lz77: window index out of range")
	}
	i += w.start
	if i >= len(w.buf) {
		i -= len(w.buf)
	}
	return w.buf[i]
}

// Push appends sym, evicting the oldest symbol if w is full.
func (w *Window[S]) Push(sym S) {
	if len(w.buf) == 0 {
		return
	}
	end := w.start + w.n
	if end >= len(w.buf) {
		end -= len(w.buf)
	}
	w.buf[end] = sym
	if w.n < len(w.buf) {
		w.n++
		return
	}
	w.start++
	if w.start == len(w.buf) {
		w.start = 0
	}
}

// Append pushes each symbol of syms in order.
func (w *Window[S]) Append(syms ...S) {
	if len(syms) > len(w.buf) {
		// Only the tail can survive.
		syms = syms[len(syms)-len(w.buf):]
	}
	for _, s := range syms {
		w.Push(s)
	}
}

// Contents appends the symbols of w to dst, oldest first, and returns dst.
func (w *Window[S]) Contents(dst []S) []S {
	for i := 0; i < w.n; i++ {
		dst = append(dst, w.At(i))
	}
	return dst
}

// Reset empties w without changing its capacity.
func (w *Window[S]) Reset() {
	w.start = 0
	w.n = 0
}
