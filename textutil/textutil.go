// Package textutil holds small string transforms used around the error
// toolkit: hex and percent decoding, and secret redaction for logs.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/zwutils/zwutil"
)

// ParseHex returns the value of a single hexadecimal digit.
func ParseHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// URLDecode decodes %XX escapes. '+' is left as is. A '%' not followed by
// two hex digits fails the whole decode with CodeInvalidArg.
func URLDecode(in string) zwutil.Result[string] {
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c != '%' {
			out = append(out, c)
			continue
		}

		if i+2 >= len(in) {
			return zwutil.MakeErrorf[string](zwutil.CodeInvalidArg, "truncated escape at offset %d", i)
		}
		h1, ok1 := ParseHex(in[i+1])
		h2, ok2 := ParseHex(in[i+2])
		if !ok1 || !ok2 {
			return zwutil.MakeErrorf[string](zwutil.CodeInvalidArg, "invalid escape %q at offset %d", in[i:i+3], i)
		}

		out = append(out, h1<<4|h2)
		i += 2
	}
	return zwutil.MakeValue(string(out))
}

// PasswordRedact masks every character of s except the first and the last,
// which are kept byte for byte. The result has as many characters as s; an
// invalid UTF-8 byte counts as one character.
func PasswordRedact(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 2 {
		return s
	}

	_, head := utf8.DecodeRuneInString(s)
	_, tail := utf8.DecodeLastRuneInString(s)

	var sb strings.Builder
	sb.Grow(head + n - 2 + tail)
	sb.WriteString(s[:head])
	sb.WriteString(strings.Repeat("*", n-2))
	sb.WriteString(s[len(s)-tail:])
	return sb.String()
}
