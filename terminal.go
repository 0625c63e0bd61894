package goenum

// Iter apply fn on each remaining element of e, consuming it fully.
func Iter[T any](e *Enum[T], fn func(T)) {
	for {
		v, ok := e.Get()
		if ok == false {
			return
		}
		fn(v)
	}
}

// Iteri like Iter, fn also receives the element index, counted from
// zero at the current position of e.
func Iteri[T any](e *Enum[T], fn func(int64, T)) {
	for i := int64(0); ; i++ {
		v, ok := e.Get()
		if ok == false {
			return
		}
		fn(i, v)
	}
}

// Fold consume e fully, threading an accumulator through fn, and
// return the final accumulator. Returns acc unchanged when e is
// already exhausted.
func Fold[T, A any](e *Enum[T], acc A, fn func(A, T) A) A {
	for {
		v, ok := e.Get()
		if ok == false {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Foldi like Fold, fn also receives the element index, counted from
// zero at the current position of e.
func Foldi[T, A any](e *Enum[T], acc A, fn func(int64, A, T) A) A {
	for i := int64(0); ; i++ {
		v, ok := e.Get()
		if ok == false {
			return acc
		}
		acc = fn(i, acc, v)
	}
}

// Find return the first remaining element satisfying pred, advancing
// e past it. Fails with ErrorExhausted when no remaining element
// satisfies pred.
func Find[T any](e *Enum[T], pred func(T) bool) (T, error) {
	for {
		v, ok := e.Get()
		if ok == false {
			var zero T
			return zero, ErrorExhausted
		}
		if pred(v) {
			return v, nil
		}
	}
}

// Toslice materialize the remaining elements into a fresh slice,
// consuming e fully.
func Toslice[T any](e *Enum[T]) []T {
	xs := make([]T, 0, 8)
	if n, ok := e.fastsize(); ok {
		xs = make([]T, 0, n)
	}
	for {
		v, ok := e.Get()
		if ok == false {
			return xs
		}
		xs = append(xs, v)
	}
}
