package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// URL percent-decodes and case-folds a raw URL.
func URL(raw string) string {
	return fold(Unescape(raw))
}

// Name case-folds a catalog name. Names are not percent-decoded so a literal
// '%' in a title is compared as-is.
func Name(name string) string {
	return fold(name)
}

// Unescape decodes %XX sequences. '+' is left untouched and malformed escapes
// are copied through unchanged.
func Unescape(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}

	out := b.String()
	if !utf8.ValidString(out) {
		out = replaceInvalid(out)
	}
	return out
}

// replaceInvalid substitutes U+FFFD for each byte that does not start a valid
// UTF-8 sequence.
func replaceInvalid(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
