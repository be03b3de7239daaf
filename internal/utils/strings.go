package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelKey converts a store column name such as "FULL_NAME" or "reg_id" to "fullName" / "regId".
// A key without lower-case letters is lowered first. The first rune is then lowered, and every
// later segment that starts with a letter is joined with its first rune upper-cased. Underscores
// that do not precede a letter are kept. The conversion is repeated until it is stable, so
// CamelKey(CamelKey(k)) == CamelKey(k) for every k.
func CamelKey(key string) string {
	for {
		next := camelOnce(key)
		if next == key {
			return key
		}
		key = next
	}
}

// camelOnce never adds underscores and only upper-cases a rune while removing one, so
// repeating it terminates.
func camelOnce(key string) string {
	if key == "" {
		return key
	}
	if isShouting(key) {
		key = strings.ToLower(key)
	}
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.Grow(len(key))

	b.WriteString(lowerFirst(parts[0]))
	prevEmpty := parts[0] == ""

	for _, seg := range parts[1:] {
		r, _ := utf8.DecodeRuneInString(seg)
		if seg == "" || prevEmpty || !unicode.IsLetter(r) {
			b.WriteByte('_')
			b.WriteString(seg)
			prevEmpty = seg == ""
			continue
		}
		b.WriteString(upperFirst(seg))
		prevEmpty = false
	}
	return b.String()
}

// isShouting reports whether s has letters and none of them is lower-case.
func isShouting(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SafeFilenamePart replaces characters that break Content-Disposition or file systems.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
