package goenum

import "sync/atomic"

// source is the pull interface behind every enumeration. pull is the
// only advancing operation, the remaining methods are capability
// queries used by Count, Clone and Force.
type source[T any] interface {
	// pull return the next element, ok is false on exhaustion.
	pull() (v T, ok bool)

	// size return the remaining element count, ok is true only when
	// the count is known in O(1).
	size() (n int64, ok bool)

	// endless report whether the source is provably infinite.
	endless() bool

	// dup return an independent copy positioned identically, ok is
	// false when the source must be forced before it can be copied.
	dup() (source[T], bool)
}

// Enum is a lazy pull-based enumeration over elements of type T,
// possibly infinite and possibly backed by a generator that computes
// elements on demand. Refer to the package documentation for the
// consumption discipline around combinators and Clone.
type Enum[T any] struct {
	src source[T]
	buf []T // pushback stack, top of stack at len(buf)-1

	// statistics
	n_pulls  int64
	n_pushes int64
	n_clones int64
	n_forces int64
	n_drops  int64
}

func newenum[T any](src source[T]) *Enum[T] {
	return &Enum[T]{src: src}
}

// Next return the next element and advance the enumeration by one.
// Fails with ErrorExhausted when no elements remain.
func (e *Enum[T]) Next() (T, error) {
	if v, ok := e.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, ErrorExhausted
}

// Get return the next element and advance the enumeration by one,
// ok is false when exhausted. Non failing variant of Next.
func (e *Enum[T]) Get() (v T, ok bool) {
	if n := len(e.buf); n > 0 {
		v, e.buf = e.buf[n-1], e.buf[:n-1]
		e.n_pulls++
		return v, true
	}
	if v, ok = e.src.pull(); ok {
		e.n_pulls++
	}
	return v, ok
}

// Peek return the next element without advancing the enumeration,
// ok is false when exhausted. Never fails.
func (e *Enum[T]) Peek() (v T, ok bool) {
	if n := len(e.buf); n > 0 {
		return e.buf[n-1], true
	}
	if v, ok = e.src.pull(); ok {
		e.buf = append(e.buf, v)
	}
	return v, ok
}

// Push x back into the enumeration, the next Get or Next call returns
// x before resuming the original sequence.
func (e *Enum[T]) Push(x T) {
	e.buf = append(e.buf, x)
	e.n_pushes++
}

// Junk advance past one element, discarding it. No-op when the
// enumeration is already exhausted.
func (e *Enum[T]) Junk() {
	e.Get()
}

// Drop advance past upto n elements, fewer when the enumeration
// exhausts first.
func (e *Enum[T]) Drop(n int64) {
	for i := int64(0); i < n; i++ {
		if _, ok := e.Get(); ok == false {
			break
		}
	}
	e.n_drops++
}

// Isempty report whether the enumeration has no remaining elements,
// without advancing it.
func (e *Enum[T]) Isempty() bool {
	_, ok := e.Peek()
	return ok == false
}

// Fastcount report whether Count is O(1) for this enumeration, true
// exactly when it was built by a bounds aware constructor or has been
// forced.
func (e *Enum[T]) Fastcount() bool {
	_, ok := e.src.size()
	return ok
}

// Count return the remaining element count without advancing the
// enumeration. O(1) when Fastcount is true, otherwise the enumeration
// is forced and counted in O(n). Fails with ErrorUnbounded for
// provably infinite enumerations, which are never forced.
func (e *Enum[T]) Count() (int64, error) {
	if n, ok := e.src.size(); ok {
		return int64(len(e.buf)) + n, nil
	}
	if err := e.Force(); err != nil {
		return 0, err
	}
	n, _ := e.src.size()
	return int64(len(e.buf)) + n, nil
}

// Force materialize the remaining elements into a concrete backing
// slice and rebind the enumeration over it. Subsequent Count calls
// become O(1) and Clone becomes cheap, while the observable remaining
// sequence is unchanged. Fails with ErrorUnbounded for provably
// infinite enumerations.
func (e *Enum[T]) Force() error {
	if e.src.endless() {
		return ErrorUnbounded
	}
	if _, ok := e.src.(*slicesrc[T]); ok {
		return nil
	}
	xs := make([]T, 0, atomic.LoadInt64(&forceminblock))
	for {
		v, ok := e.src.pull()
		if ok == false {
			break
		}
		xs = append(xs, v)
	}
	e.src = &slicesrc[T]{xs: xs}
	e.n_forces++
	debugf("goenum: forced %v elements\n", len(xs))
	return nil
}

// Clone return an independent enumeration positioned identically to
// this one, subsequent consumption of either does not affect the
// other. Cheap for bounds aware and forced enumerations, every other
// enumeration is forced first, hence ErrorUnbounded for provably
// infinite ones.
func (e *Enum[T]) Clone() (*Enum[T], error) {
	src, ok := e.src.dup()
	if ok == false {
		if err := e.Force(); err != nil {
			return nil, err
		}
		src, _ = e.src.dup()
	}
	e.n_clones++
	clone := newenum(src)
	if len(e.buf) > 0 {
		clone.buf = append(clone.buf, e.buf...)
	}
	return clone, nil
}

// fastsize return the remaining count including pushed back elements,
// ok is false unless the count is known in O(1).
func (e *Enum[T]) fastsize() (int64, bool) {
	if n, ok := e.src.size(); ok {
		return int64(len(e.buf)) + n, true
	}
	return 0, false
}

func (e *Enum[T]) isendless() bool {
	return e.src.endless()
}
