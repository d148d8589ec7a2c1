// Package naming derives display names and Julia module identifiers from a
// project name.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize uppercases the first character of s and leaves the rest
// unchanged. The first character uses the full Unicode mapping, so a leading
// "ß" becomes "SS".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// ModuleName turns a project name into a Julia module identifier by splitting
// on '-' and '_' and capitalizing each segment, e.g. "my-cool_project" →
// "MyCoolProject". The result is not checked to be a valid identifier.
func ModuleName(s string) string {
	segments := strings.FieldsFunc(s, isSeparator)
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(Capitalize(seg))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}
