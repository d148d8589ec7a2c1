package project

import (
	"fmt"
	"strings"
)

// Language is the optional target language of a scaffolded project.
type Language int

// Supported languages. LanguageNone means no language-specific files.
const (
	LanguageNone Language = iota
	Python
	Julia
)

var languageNames = map[Language]string{
	Python: "python",
	Julia:  "julia",
}

// ParseLanguage matches s case-insensitively against the supported
// languages. An empty string yields LanguageNone.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LanguageNone, nil
	}
	for lang, name := range languageNames {
		if strings.EqualFold(s, name) {
			return lang, nil
		}
	}
	return LanguageNone, fmt.Errorf("invalid language %q: must be one of %s", s, strings.Join(LanguageNames(), ", "))
}

// LanguageNames returns the accepted language values in a stable order.
func LanguageNames() []string {
	return []string{languageNames[Python], languageNames[Julia]}
}

// String returns the lower-case flag value, or "" for LanguageNone.
func (l Language) String() string {
	return languageNames[l]
}

// Set implements pflag.Value.
func (l *Language) Set(s string) error {
	parsed, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements pflag.Value.
func (l *Language) Type() string {
	return "language"
}
