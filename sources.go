package goenum

// slicesrc enumerate over a backing slice, this is also the
// representation every forced enumeration is rebound to.
type slicesrc[T any] struct {
	xs  []T
	off int
}

func (src *slicesrc[T]) pull() (v T, ok bool) {
	if src.off >= len(src.xs) {
		return v, false
	}
	v, src.off = src.xs[src.off], src.off+1
	return v, true
}

func (src *slicesrc[T]) size() (int64, bool) {
	return int64(len(src.xs) - src.off), true
}

func (src *slicesrc[T]) endless() bool {
	return false
}

func (src *slicesrc[T]) dup() (source[T], bool) {
	// clones share the backing slice, cursors are private.
	return &slicesrc[T]{xs: src.xs, off: src.off}, true
}

// rangesrc enumerate integers from cur, stepping by +1 or -1, for rem
// elements.
type rangesrc struct {
	cur  int64
	step int64
	rem  int64
}

func (src *rangesrc) pull() (int64, bool) {
	if src.rem <= 0 {
		return 0, false
	}
	v := src.cur
	src.cur, src.rem = src.cur+src.step, src.rem-1
	return v, true
}

func (src *rangesrc) size() (int64, bool) {
	return src.rem, true
}

func (src *rangesrc) endless() bool {
	return false
}

func (src *rangesrc) dup() (source[int64], bool) {
	copied := *src
	return &copied, true
}

// initsrc enumerate fn(0) .. fn(n-1), computing elements on demand.
type initsrc[T any] struct {
	fn  func(int64) T
	idx int64
	n   int64
}

func (src *initsrc[T]) pull() (v T, ok bool) {
	if src.idx >= src.n {
		return v, false
	}
	v = src.fn(src.idx)
	src.idx++
	return v, true
}

func (src *initsrc[T]) size() (int64, bool) {
	return src.n - src.idx, true
}

func (src *initsrc[T]) endless() bool {
	return false
}

func (src *initsrc[T]) dup() (source[T], bool) {
	// clones share fn, which shall be pure, cursors are private.
	copied := *src
	return &copied, true
}

// repeatsrc enumerate x over and over, rem < 0 means unbounded.
type repeatsrc[T any] struct {
	x   T
	rem int64
}

func (src *repeatsrc[T]) pull() (v T, ok bool) {
	if src.rem == 0 {
		return v, false
	}
	if src.rem > 0 {
		src.rem--
	}
	return src.x, true
}

func (src *repeatsrc[T]) size() (int64, bool) {
	if src.rem < 0 {
		return 0, false
	}
	return src.rem, true
}

func (src *repeatsrc[T]) endless() bool {
	return src.rem < 0
}

func (src *repeatsrc[T]) dup() (source[T], bool) {
	if src.rem < 0 { // unbounded, Clone must fail ErrorUnbounded
		return nil, false
	}
	copied := *src
	return &copied, true
}

// cyclesrc replay its source enumeration rem times, rem < 0 means
// unbounded. The first pass records elements into a replay buffer as
// they are pulled, later passes replay the buffer, so the source is
// consumed exactly once and only as far as downstream demands.
type cyclesrc[T any] struct {
	src       *Enum[T]
	buf       []T
	recording bool
	pos       int
	rem       int64 // passes remaining, current one included
}

func (src *cyclesrc[T]) pull() (v T, ok bool) {
	if src.rem == 0 {
		return v, false
	}
	if src.recording {
		if v, ok = src.src.Get(); ok {
			src.buf = append(src.buf, v)
			return v, true
		}
		src.recording = false
		src.endpass()
		if len(src.buf) == 0 { // cycling an empty enumeration
			src.rem = 0
			return v, false
		}
		return src.pull()
	}
	if src.pos >= len(src.buf) {
		src.endpass()
		if src.rem == 0 {
			return v, false
		}
	}
	v = src.buf[src.pos]
	src.pos++
	return v, true
}

func (src *cyclesrc[T]) endpass() {
	if src.rem > 0 {
		src.rem--
	}
	src.pos = 0
}

func (src *cyclesrc[T]) size() (int64, bool) {
	return 0, false
}

func (src *cyclesrc[T]) endless() bool {
	// structural, an unbounded cycle is treated as infinite even
	// before the source is known to be non-empty.
	return src.rem < 0
}

func (src *cyclesrc[T]) dup() (source[T], bool) {
	return nil, false
}

// funcsrc enumerate elements pulled from a caller supplied generator.
type funcsrc[T any] struct {
	fn   func() (T, bool)
	done bool
}

func (src *funcsrc[T]) pull() (v T, ok bool) {
	if src.done {
		return v, false
	}
	if v, ok = src.fn(); ok == false {
		src.done = true
	}
	return v, ok
}

func (src *funcsrc[T]) size() (int64, bool) {
	return 0, false
}

func (src *funcsrc[T]) endless() bool {
	return false
}

func (src *funcsrc[T]) dup() (source[T], bool) {
	return nil, false
}
