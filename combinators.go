package goenum

// Combinators are lazy. No element of the source is consumed until
// the derived enumeration is itself consumed, the combinator function
// is applied exactly once per element, in source order, at the time
// the element is pulled through the derived enumeration.

// Map return an enumeration applying fn over the elements of e.
func Map[T, U any](e *Enum[T], fn func(T) U) *Enum[U] {
	return newenum[U](&mapsrc[T, U]{src: e, fn: fn})
}

// Mapi like Map, fn also receives the element index, counted from
// zero at the current position of e.
func Mapi[T, U any](e *Enum[T], fn func(int64, T) U) *Enum[U] {
	return newenum[U](&mapisrc[T, U]{src: e, fn: fn})
}

// Filter return an enumeration over the elements of e satisfying
// pred.
func Filter[T any](e *Enum[T], pred func(T) bool) *Enum[T] {
	return newenum[T](&filtersrc[T]{src: e, pred: pred})
}

// Filtermap return an enumeration applying fn over the elements of e,
// keeping only results with ok=true.
func Filtermap[T, U any](e *Enum[T], fn func(T) (U, bool)) *Enum[U] {
	return newenum[U](&filtermapsrc[T, U]{src: e, fn: fn})
}

// Append return an enumeration over the elements of e1 followed by
// the elements of e2.
func Append[T any](e1, e2 *Enum[T]) *Enum[T] {
	return newenum[T](&appendsrc[T]{e1: e1, e2: e2, onfirst: true})
}

// Concat flatten an enumeration of enumerations, preserving order.
// Infinity detection is structural and cannot see through inner
// enumerations the outer has not yet produced, Count or Force against
// an unbounded inner still hidden inside the outer will diverge
// instead of failing with ErrorUnbounded.
func Concat[T any](ee *Enum[*Enum[T]]) *Enum[T] {
	return newenum[T](&concatsrc[T]{outer: ee})
}

// Takewhile return an enumeration over the longest prefix of e whose
// elements satisfy pred. The delimiting element, if any, is consumed
// from e and discarded.
func Takewhile[T any](e *Enum[T], pred func(T) bool) *Enum[T] {
	return newenum[T](&takewhilesrc[T]{src: e, pred: pred})
}

// Dropwhile return an enumeration over the suffix of e following its
// longest prefix of elements satisfying pred. The prefix is consumed
// lazily, on the first pull.
func Dropwhile[T any](e *Enum[T], pred func(T) bool) *Enum[T] {
	return newenum[T](&dropwhilesrc[T]{src: e, pred: pred, dropping: true})
}

// Switch partition e into two enumerations preserving relative order,
// elements satisfying pred in the first, the rest in the second. The
// source is consumed exactly once overall and each pulled element is
// routed to exactly one output, lazily - pulling on one output
// buffers the elements destined for the other.
func Switch[T any](e *Enum[T], pred func(T) bool) (yes, no *Enum[T]) {
	sw := &switcher[T]{src: e, pred: pred}
	yes = newenum[T](&switchsrc[T]{sw: sw, match: true})
	no = newenum[T](&switchsrc[T]{sw: sw, match: false})
	return yes, no
}

type mapsrc[T, U any] struct {
	src *Enum[T]
	fn  func(T) U
}

func (src *mapsrc[T, U]) pull() (v U, ok bool) {
	x, ok := src.src.Get()
	if ok == false {
		return v, false
	}
	return src.fn(x), true
}

func (src *mapsrc[T, U]) size() (int64, bool) {
	return src.src.fastsize()
}

func (src *mapsrc[T, U]) endless() bool {
	return src.src.isendless()
}

func (src *mapsrc[T, U]) dup() (source[U], bool) {
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &mapsrc[T, U]{src: clone, fn: src.fn}, true
}

type mapisrc[T, U any] struct {
	src *Enum[T]
	fn  func(int64, T) U
	idx int64
}

func (src *mapisrc[T, U]) pull() (v U, ok bool) {
	x, ok := src.src.Get()
	if ok == false {
		return v, false
	}
	v = src.fn(src.idx, x)
	src.idx++
	return v, true
}

func (src *mapisrc[T, U]) size() (int64, bool) {
	return src.src.fastsize()
}

func (src *mapisrc[T, U]) endless() bool {
	return src.src.isendless()
}

func (src *mapisrc[T, U]) dup() (source[U], bool) {
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &mapisrc[T, U]{src: clone, fn: src.fn, idx: src.idx}, true
}

type filtersrc[T any] struct {
	src  *Enum[T]
	pred func(T) bool
}

func (src *filtersrc[T]) pull() (v T, ok bool) {
	for {
		if v, ok = src.src.Get(); ok == false {
			return v, false
		} else if src.pred(v) {
			return v, true
		}
	}
}

func (src *filtersrc[T]) size() (int64, bool) {
	return 0, false
}

func (src *filtersrc[T]) endless() bool {
	// conservative, a filtered infinite source may produce finitely
	// many elements but that cannot be proven without consuming it.
	return src.src.isendless()
}

func (src *filtersrc[T]) dup() (source[T], bool) {
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &filtersrc[T]{src: clone, pred: src.pred}, true
}

type filtermapsrc[T, U any] struct {
	src *Enum[T]
	fn  func(T) (U, bool)
}

func (src *filtermapsrc[T, U]) pull() (v U, ok bool) {
	for {
		x, xok := src.src.Get()
		if xok == false {
			return v, false
		}
		if v, ok = src.fn(x); ok {
			return v, true
		}
	}
}

func (src *filtermapsrc[T, U]) size() (int64, bool) {
	return 0, false
}

func (src *filtermapsrc[T, U]) endless() bool {
	return src.src.isendless()
}

func (src *filtermapsrc[T, U]) dup() (source[U], bool) {
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &filtermapsrc[T, U]{src: clone, fn: src.fn}, true
}

type appendsrc[T any] struct {
	e1, e2  *Enum[T]
	onfirst bool
}

func (src *appendsrc[T]) pull() (v T, ok bool) {
	if src.onfirst {
		if v, ok = src.e1.Get(); ok {
			return v, true
		}
		src.onfirst = false
	}
	return src.e2.Get()
}

func (src *appendsrc[T]) size() (int64, bool) {
	n1, ok1 := src.e1.fastsize()
	n2, ok2 := src.e2.fastsize()
	if ok1 && ok2 {
		return n1 + n2, true
	}
	return 0, false
}

func (src *appendsrc[T]) endless() bool {
	return src.e1.isendless() || src.e2.isendless()
}

func (src *appendsrc[T]) dup() (source[T], bool) {
	c1, err := src.e1.Clone()
	if err != nil {
		return nil, false
	}
	c2, err := src.e2.Clone()
	if err != nil {
		return nil, false
	}
	return &appendsrc[T]{e1: c1, e2: c2, onfirst: src.onfirst}, true
}

type concatsrc[T any] struct {
	outer *Enum[*Enum[T]]
	inner *Enum[T]
}

func (src *concatsrc[T]) pull() (v T, ok bool) {
	for {
		if src.inner != nil {
			if v, ok = src.inner.Get(); ok {
				return v, true
			}
			src.inner = nil
		}
		if src.inner, ok = src.outer.Get(); ok == false {
			return v, false
		}
	}
}

func (src *concatsrc[T]) size() (int64, bool) {
	return 0, false
}

func (src *concatsrc[T]) endless() bool {
	if src.inner != nil && src.inner.isendless() {
		return true
	}
	return src.outer.isendless()
}

func (src *concatsrc[T]) dup() (source[T], bool) {
	// cloning the outer enumeration would leave both copies sharing
	// the inner handles, force instead.
	return nil, false
}

type takewhilesrc[T any] struct {
	src  *Enum[T]
	pred func(T) bool
	done bool
}

func (src *takewhilesrc[T]) pull() (v T, ok bool) {
	if src.done {
		return v, false
	}
	if v, ok = src.src.Get(); ok == false {
		src.done = true
		return v, false
	}
	if src.pred(v) == false {
		src.done = true
		var zero T
		return zero, false
	}
	return v, true
}

func (src *takewhilesrc[T]) size() (int64, bool) {
	if src.done {
		return 0, true
	}
	return 0, false
}

func (src *takewhilesrc[T]) endless() bool {
	// the prefix may well be finite, but that cannot be proven
	// without consuming the source.
	return src.done == false && src.src.isendless()
}

func (src *takewhilesrc[T]) dup() (source[T], bool) {
	if src.done {
		return &takewhilesrc[T]{done: true}, true
	}
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &takewhilesrc[T]{src: clone, pred: src.pred}, true
}

type dropwhilesrc[T any] struct {
	src      *Enum[T]
	pred     func(T) bool
	dropping bool
}

func (src *dropwhilesrc[T]) pull() (v T, ok bool) {
	if src.dropping {
		for {
			if v, ok = src.src.Get(); ok == false {
				return v, false
			} else if src.pred(v) == false {
				src.dropping = false
				return v, true
			}
		}
	}
	return src.src.Get()
}

func (src *dropwhilesrc[T]) size() (int64, bool) {
	if src.dropping {
		return 0, false
	}
	return src.src.fastsize()
}

func (src *dropwhilesrc[T]) endless() bool {
	return src.src.isendless()
}

func (src *dropwhilesrc[T]) dup() (source[T], bool) {
	clone, err := src.src.Clone()
	if err != nil {
		return nil, false
	}
	return &dropwhilesrc[T]{src: clone, pred: src.pred, dropping: src.dropping}, true
}

// switcher routes elements pulled from a common source to the two
// outputs of Switch, buffering elements destined for the side not
// being consumed.
type switcher[T any] struct {
	src  *Enum[T]
	pred func(T) bool
	yes  []T
	no   []T
}

func (sw *switcher[T]) route(match bool) (v T, ok bool) {
	q := &sw.yes
	if match == false {
		q = &sw.no
	}
	if len(*q) > 0 {
		v, *q = (*q)[0], (*q)[1:]
		return v, true
	}
	for {
		if v, ok = sw.src.Get(); ok == false {
			return v, false
		}
		if sw.pred(v) == match {
			return v, true
		}
		if match {
			sw.no = append(sw.no, v)
		} else {
			sw.yes = append(sw.yes, v)
		}
	}
}

type switchsrc[T any] struct {
	sw    *switcher[T]
	match bool
}

func (src *switchsrc[T]) pull() (T, bool) {
	return src.sw.route(src.match)
}

func (src *switchsrc[T]) size() (int64, bool) {
	return 0, false
}

func (src *switchsrc[T]) endless() bool {
	return src.sw.src.isendless()
}

func (src *switchsrc[T]) dup() (source[T], bool) {
	// the two outputs share the router, force instead.
	return nil, false
}
