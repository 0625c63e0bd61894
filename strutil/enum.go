package strutil

import "strings"

import "github.com/bnclabs/goenum"

// Enumerate return an enumeration over the bytes of s. The string is
// not copied, counting is O(1) and cloning is cheap.
func Enumerate(s string) *goenum.Enum[byte] {
	return goenum.Init(int64(len(s)), func(i int64) byte {
		return s[i]
	})
}

// Ofenum materialize an enumeration of bytes into a new string,
// consuming it fully.
func Ofenum(e *goenum.Enum[byte]) string {
	var sb strings.Builder
	if e.Fastcount() {
		n, _ := e.Count()
		sb.Grow(int(n))
	}
	for {
		b, ok := e.Get()
		if ok == false {
			return sb.String()
		}
		sb.WriteByte(b)
	}
}
