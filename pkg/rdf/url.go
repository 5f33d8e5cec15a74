package rdf

import (
	"strings"
	"unicode/utf8"
)

// DecodeURL takes a URL that is percent-encoded for use in a format such
// as HTML or N-Triples and converts it to a Unicode URL. If the URL is
// wrapped in angle brackets because it comes from an N-Triples file,
// those are stripped.
//
// Percent escapes are decoded to raw bytes first and the byte sequence is
// then interpreted as UTF-8, because percent-encoding operates on bytes,
// not code points. Invalid escapes pass through literally and each
// invalid UTF-8 byte becomes one U+FFFD; DecodeURL never fails.
//
//	DecodeURL("<http://dbpedia.org/resource/N%C3%BAria_Espert>")
//	// "http://dbpedia.org/resource/Núria_Espert"
func DecodeURL(encoded string) string {
	s := strings.TrimPrefix(encoded, "<")
	s = strings.TrimSuffix(s, ">")
	return decodeUTF8Replace(unquoteBytes(s))
}

// unquoteBytes resolves %XX escapes into raw bytes. A '%' not followed by
// two hex digits is kept as-is.
func unquoteBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

func unhex(c byte) (byte, bool) {
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

// decodeUTF8Replace interprets b as UTF-8, substituting one replacement
// character for every invalid byte.
func decodeUTF8Replace(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String()
}

// EncodeURLComponent percent-encodes text for inclusion in a URL path.
// Letters, digits, '_', '.', '-', '~' and '/' are preserved; everything
// else, including non-ASCII runes, is escaped byte by byte. The '/'
// separator stays literal so hierarchical URI paths survive encoding.
//
// This is the companion of DecodeURL, not its byte-exact inverse: it
// produces an equivalent URL, not necessarily the original escaping.
func EncodeURLComponent(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if urlSafe(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xf])
		}
	}
	return sb.String()
}

const upperhex = "0123456789ABCDEF"

func urlSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~' || c == '/':
		return true
	}
	return false
}
