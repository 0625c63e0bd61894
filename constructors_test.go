package goenum

import "testing"

func TestEmpty(t *testing.T) {
	e := Empty[int]()
	if e.Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
	if n, err := e.Count(); err != nil || n != 0 {
		t.Fatalf("expected %v, got %v (%v)", 0, n, err)
	}
	if e.Fastcount() == false {
		t.Fatalf("expected fastcount")
	}
}

func TestSingleton(t *testing.T) {
	e := Singleton("x")
	if n, err := e.Count(); err != nil || n != 1 {
		t.Fatalf("expected %v, got %v (%v)", 1, n, err)
	}
	if v, ok := e.Get(); ok == false || v != "x" {
		t.Fatalf("expected %q, got %q (%v)", "x", v, ok)
	}
	if e.Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestInit(t *testing.T) {
	e := Init(5, func(i int64) int64 { return i * i })
	if e.Fastcount() == false {
		t.Fatalf("expected fastcount")
	}
	ref := []int64{0, 1, 4, 9, 16}
	for _, x := range ref {
		if v, ok := e.Get(); ok == false || v != x {
			t.Fatalf("expected %v, got %v (%v)", x, v, ok)
		}
	}
	if e.Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
	if Init(-1, func(i int64) int64 { return i }).Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestRangeCount(t *testing.T) {
	for lo := int64(-3); lo <= 3; lo++ {
		for hi := int64(-3); hi <= 3; hi++ {
			ref := hi - lo + 1
			if ref < 0 {
				ref = 0
			}
			if n, err := Range(lo, hi).Count(); err != nil {
				t.Fatalf("unexpected %v", err)
			} else if n != ref {
				t.Fatalf("range(%v,%v) expected %v, got %v", lo, hi, ref, n)
			}
		}
	}
}

func TestBetween(t *testing.T) {
	ref := []int64{1, 2, 3}
	for i, e := 0, Between(1, 3); i < len(ref); i++ {
		if v, ok := e.Get(); ok == false || v != ref[i] {
			t.Fatalf("expected %v, got %v (%v)", ref[i], v, ok)
		}
	}
	e := Between(5, 1)
	if n, err := e.Count(); err != nil || n != 5 {
		t.Fatalf("expected %v, got %v (%v)", 5, n, err)
	}
	ref = []int64{5, 4, 3, 2, 1}
	for _, x := range ref {
		if v, ok := e.Get(); ok == false || v != x {
			t.Fatalf("expected %v, got %v (%v)", x, v, ok)
		}
	}
	if e.Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestRepeat(t *testing.T) {
	e := Repeat(7)
	for i := 0; i < 100; i++ {
		if v, ok := e.Get(); ok == false || v != 7 {
			t.Fatalf("expected %v, got %v (%v)", 7, v, ok)
		}
	}
	if e.Fastcount() {
		t.Fatalf("unexpected fastcount on unbounded enumeration")
	}
	if _, err := e.Count(); err != ErrorUnbounded {
		t.Fatalf("expected %v, got %v", ErrorUnbounded, err)
	}
}

func TestRepeatn(t *testing.T) {
	e := Repeatn("ab", 3)
	if n, err := e.Count(); err != nil || n != 3 {
		t.Fatalf("expected %v, got %v (%v)", 3, n, err)
	}
	clone, err := e.Clone()
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	for _, e := range []*Enum[string]{e, clone} {
		for i := 0; i < 3; i++ {
			if v, ok := e.Get(); ok == false || v != "ab" {
				t.Fatalf("expected %q, got %q (%v)", "ab", v, ok)
			}
		}
		if e.Isempty() == false {
			t.Fatalf("expected empty enumeration")
		}
	}
	if Repeatn(1, 0).Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestCyclen(t *testing.T) {
	e := Cyclen(Fromslice([]byte("ab")), 2)
	if string(Toslice(e)) != "abab" {
		t.Fatalf("expected %q", "abab")
	}
	// single pass cycles behave like their source.
	e = Cyclen(Fromslice([]byte("xyz")), 1)
	if string(Toslice(e)) != "xyz" {
		t.Fatalf("expected %q", "xyz")
	}
	if Cyclen(Fromslice([]byte("ab")), 0).Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
	// cycling an empty enumeration is empty for any bound.
	if Cyclen(Empty[byte](), 3).Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestCycle(t *testing.T) {
	e := Cycle(Fromslice([]int{1, 2}))
	ref := []int{1, 2, 1, 2, 1, 2, 1}
	for _, x := range ref {
		if v, ok := e.Get(); ok == false || v != x {
			t.Fatalf("expected %v, got %v (%v)", x, v, ok)
		}
	}
	if _, err := e.Count(); err != ErrorUnbounded {
		t.Fatalf("expected %v, got %v", ErrorUnbounded, err)
	}
	// provability is structural, an unbounded cycle over an empty
	// enumeration still refuses to count.
	if _, err := Cycle(Empty[int]()).Count(); err != ErrorUnbounded {
		t.Fatalf("expected %v, got %v", ErrorUnbounded, err)
	}
	if Cycle(Empty[int]()).Isempty() == false {
		t.Fatalf("expected empty enumeration")
	}
}

func TestFromfunc(t *testing.T) {
	i, calls := 0, 0
	e := Fromfunc(func() (int, bool) {
		calls++
		i++
		return i, i <= 3
	})
	if calls != 0 { // lazy until pulled
		t.Fatalf("expected %v, got %v", 0, calls)
	}
	ref := []int{1, 2, 3}
	for _, x := range ref {
		if v, ok := e.Get(); ok == false || v != x {
			t.Fatalf("expected %v, got %v (%v)", x, v, ok)
		}
	}
	if _, ok := e.Get(); ok {
		t.Fatalf("expected exhausted enumeration")
	}
	if calls != 4 { // never invoked after exhaustion
		t.Fatalf("expected %v, got %v", 4, calls)
	}
	e.Junk()
	if calls != 4 {
		t.Fatalf("expected %v, got %v", 4, calls)
	}
}

func TestFromnext(t *testing.T) {
	i := 0
	e := Fromnext(func() (int, error) {
		i++
		if i > 3 {
			return 0, ErrorExhausted
		}
		return i * 2, nil
	})
	ref := []int{2, 4, 6}
	for _, x := range ref {
		if v, err := e.Next(); err != nil || v != x {
			t.Fatalf("expected %v, got %v (%v)", x, v, err)
		}
	}
	if _, err := e.Next(); err != ErrorExhausted {
		t.Fatalf("expected %v, got %v", ErrorExhausted, err)
	}
}

func TestFromnextPanic(t *testing.T) {
	e := Fromnext(func() (int, error) {
		return 0, ErrorUnbounded // anything but ErrorExhausted
	})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unexpected error")
		}
	}()
	e.Get()
}

func BenchmarkRange(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := Range(1, 1000)
		for {
			if _, ok := e.Get(); ok == false {
				break
			}
		}
	}
}

func BenchmarkInit(b *testing.B) {
	fn := func(i int64) int64 { return i }
	for i := 0; i < b.N; i++ {
		e := Init(1000, fn)
		for {
			if _, ok := e.Get(); ok == false {
				break
			}
		}
	}
}
