package goenum

// Empty return an enumeration with no elements.
func Empty[T any]() *Enum[T] {
	return newenum[T](&slicesrc[T]{})
}

// Singleton return an enumeration holding just x.
func Singleton[T any](x T) *Enum[T] {
	return Fromslice([]T{x})
}

// Fromslice return an enumeration over the elements of xs. Counting
// is O(1) and cloning is cheap. The slice is not copied, callers
// shall not mutate it while the enumeration is live.
func Fromslice[T any](xs []T) *Enum[T] {
	return newenum[T](&slicesrc[T]{xs: xs})
}

// Init return an enumeration of n elements fn(0) .. fn(n-1), computed
// on demand. Counting is O(1) and cloning is cheap, provided fn is
// pure, clones share it.
func Init[T any](n int64, fn func(int64) T) *Enum[T] {
	if n < 0 {
		n = 0
	}
	return newenum[T](&initsrc[T]{fn: fn, n: n})
}

// Range return an ascending enumeration of integers lo .. hi, both
// inclusive, empty when lo > hi. Counting is O(1) and cloning is
// cheap.
func Range(lo, hi int64) *Enum[int64] {
	rem := hi - lo + 1
	if rem < 0 {
		rem = 0
	}
	return newenum[int64](&rangesrc{cur: lo, step: 1, rem: rem})
}

// Between return an enumeration of integers from lo to hi, both
// inclusive, ascending when lo <= hi and descending otherwise.
func Between(lo, hi int64) *Enum[int64] {
	if lo <= hi {
		return Range(lo, hi)
	}
	return newenum[int64](&rangesrc{cur: lo, step: -1, rem: lo - hi + 1})
}

// Repeat return the unbounded enumeration x, x, x ... Count, Force
// and Clone fail with ErrorUnbounded.
func Repeat[T any](x T) *Enum[T] {
	return newenum[T](&repeatsrc[T]{x: x, rem: -1})
}

// Repeatn return the enumeration of x repeated `times` times, empty
// when times <= 0.
func Repeatn[T any](x T, times int64) *Enum[T] {
	if times < 0 {
		times = 0
	}
	return newenum[T](&repeatsrc[T]{x: x, rem: times})
}

// Cycle return the unbounded enumeration cycling over the elements of
// e. The first pass records e into a replay buffer as elements are
// pulled, later passes replay the buffer, e shall not be consumed
// independently afterwards. Count, Force and Clone fail with
// ErrorUnbounded, even when e turns out to be empty - provability is
// structural.
func Cycle[T any](e *Enum[T]) *Enum[T] {
	return newenum[T](&cyclesrc[T]{src: e, recording: true, rem: -1})
}

// Cyclen like Cycle, bounded to `times` passes over e, empty when
// times <= 0.
func Cyclen[T any](e *Enum[T], times int64) *Enum[T] {
	if times < 0 {
		times = 0
	}
	return newenum[T](&cyclesrc[T]{src: e, recording: true, rem: times})
}

// Fromfunc return an enumeration pulling elements from fn, ending at
// the first ok=false. fn is invoked once per element, on demand, and
// never again once it reports exhaustion.
func Fromfunc[T any](fn func() (T, bool)) *Enum[T] {
	return newenum[T](&funcsrc[T]{fn: fn})
}

// Fromnext like Fromfunc, with exhaustion signalled by returning
// ErrorExhausted instead of a sentinel. Any other error from fn is a
// contract violation and panics.
func Fromnext[T any](fn func() (T, error)) *Enum[T] {
	return Fromfunc(func() (v T, ok bool) {
		v, err := fn()
		if err == nil {
			return v, true
		} else if err == ErrorExhausted {
			return v, false
		}
		panic(err)
	})
}
