package goenum

import "iter"

// Values return the remaining elements as a range-over-func sequence,
// consuming the enumeration as the sequence is ranged over. The
// sequence is single use, like the enumeration backing it.
func Values[T any](e *Enum[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := e.Get()
			if ok == false {
				return
			}
			if yield(v) == false {
				return
			}
		}
	}
}

// Fromseq return an enumeration pulling elements from a
// range-over-func sequence.
func Fromseq[T any](sq iter.Seq[T]) *Enum[T] {
	next, stop := iter.Pull(sq)
	return Fromfunc(func() (T, bool) {
		v, ok := next()
		if ok == false {
			stop()
		}
		return v, ok
	})
}
