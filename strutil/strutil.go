package strutil

import "errors"
import "strconv"
import "strings"

// ErrorInvalidString is returned when an argument does not satisfy a
// function's precondition, a missing substring or an unparsable
// number.
var ErrorInvalidString = errors.New("strutil.invalidstring")

const spacechars = " \t\r\n"

// Find return the index of the first occurrence of sub within s.
// Fails with ErrorInvalidString when sub does not occur in s.
func Find(s, sub string) (int, error) {
	if idx := strings.Index(s, sub); idx >= 0 {
		return idx, nil
	}
	return 0, ErrorInvalidString
}

// Rfind return the index of the last occurrence of sub within s.
// Fails with ErrorInvalidString when sub does not occur in s.
func Rfind(s, sub string) (int, error) {
	if idx := strings.LastIndex(s, sub); idx >= 0 {
		return idx, nil
	}
	return 0, ErrorInvalidString
}

// Contains report whether sub occurs within s.
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// Startswith report whether s begins with prefix.
func Startswith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// Endswith report whether s ends with suffix.
func Endswith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Split s around the first occurrence of sep, returning the text
// before and after it, sep excluded. Fails with ErrorInvalidString
// when sep does not occur in s.
func Split(s, sep string) (left, right string, err error) {
	idx, err := Find(s, sep)
	if err != nil {
		return "", "", err
	}
	return s[:idx], s[idx+len(sep):], nil
}

// Rsplit like Split, around the last occurrence of sep.
func Rsplit(s, sep string) (left, right string, err error) {
	idx, err := Rfind(s, sep)
	if err != nil {
		return "", "", err
	}
	return s[:idx], s[idx+len(sep):], nil
}

// Nsplit split s around every occurrence of sep. Returns nil for the
// empty string and fails with ErrorInvalidString when sep is empty.
func Nsplit(s, sep string) ([]string, error) {
	if sep == "" {
		return nil, ErrorInvalidString
	} else if s == "" {
		return nil, nil
	}
	return strings.Split(s, sep), nil
}

// Join concatenate parts, placing sep between adjacent parts.
func Join(sep string, parts []string) string {
	return strings.Join(parts, sep)
}

// Slice return the substring of s between indexes i, inclusive, and
// j, exclusive. Negative indexes count from the end of s, out of
// range indexes are clamped to the nearest valid position, and i > j
// yields the empty string. Never fails.
func Slice(s string, i, j int) string {
	i, j = clampindex(s, i), clampindex(s, j)
	if i >= j {
		return ""
	}
	return s[i:j]
}

func clampindex(s string, idx int) int {
	if idx < 0 {
		idx += len(s)
	}
	if idx < 0 {
		return 0
	} else if idx > len(s) {
		return len(s)
	}
	return idx
}

// Lchop return s without its first byte, the empty string is returned
// unchanged.
func Lchop(s string) string {
	if s == "" {
		return ""
	}
	return s[1:]
}

// Rchop return s without its last byte, the empty string is returned
// unchanged.
func Rchop(s string) string {
	if s == "" {
		return ""
	}
	return s[:len(s)-1]
}

// Strip return s with leading and trailing bytes from chars removed,
// whitespace when chars is empty.
func Strip(s, chars string) string {
	if chars == "" {
		chars = spacechars
	}
	return strings.Trim(s, chars)
}

// Map return a copy of s with fn applied on every byte.
func Map(s string, fn func(byte) byte) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = fn(s[i])
	}
	return string(out)
}

// Replace return a copy of s with the first occurrence of sub
// replaced by `by`, the second return is false, and s is returned
// unchanged, when sub does not occur in s.
func Replace(s, sub, by string) (string, bool) {
	idx := strings.Index(s, sub)
	if idx < 0 {
		return s, false
	}
	return s[:idx] + by + s[idx+len(sub):], true
}

// Replacechars return the concatenation of fn applied on every byte
// of s, letting a single byte expand to any string, including the
// empty one.
func Replacechars(s string, fn func(byte) string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		sb.WriteString(fn(s[i]))
	}
	return sb.String()
}

// Uppercase return a copy of s with ASCII letters upper cased.
func Uppercase(s string) string {
	return Map(s, upperbyte)
}

// Lowercase return a copy of s with ASCII letters lower cased.
func Lowercase(s string) string {
	return Map(s, lowerbyte)
}

// Capitalize return a copy of s with its first byte upper cased.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return string(upperbyte(s[0])) + s[1:]
}

// Uncapitalize return a copy of s with its first byte lower cased.
func Uncapitalize(s string) string {
	if s == "" {
		return ""
	}
	return string(lowerbyte(s[0])) + s[1:]
}

func upperbyte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lowerbyte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// Ofint return the decimal representation of i.
func Ofint(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Toint parse s as a decimal integer, fails with ErrorInvalidString.
func Toint(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrorInvalidString
	}
	return i, nil
}

// Offloat return the shortest representation of f that parses back
// exactly.
func Offloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Tofloat parse s as a floating point number, fails with
// ErrorInvalidString.
func Tofloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrorInvalidString
	}
	return f, nil
}

// Explode return the bytes of s as a fresh slice.
func Explode(s string) []byte {
	return []byte(s)
}

// Implode build a string from bytes.
func Implode(xs []byte) string {
	return string(xs)
}
