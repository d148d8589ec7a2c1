package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/resproj/resproj/internal/naming"
)

var (
	// ErrEmptyName is returned when the resolved project name is empty.
	ErrEmptyName = errors.New("project name cannot be empty")
	// ErrInvalidEncoding is returned when the name is derived from a path
	// segment that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("project name is not a valid UTF-8 string")
)

// Spec describes one project to scaffold. It is built once by Resolve.
type Spec struct {
	Root     string
	Name     string
	Language Language
}

// Resolve builds a Spec from the target path, an optional name override and
// a language. A nil override takes the name from the final segment of root;
// a non-nil override is used as given, so an empty one fails with
// ErrEmptyName.
func Resolve(root string, nameOverride *string, lang Language) (*Spec, error) {
	var name string
	if nameOverride != nil {
		name = *nameOverride
	} else {
		segment := ""
		if root != "" {
			segment = filepath.Base(root)
		}
		if !utf8.ValidString(segment) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, segment)
		}
		name = segment
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Spec{
		Root:     root,
		Name:     name,
		Language: lang,
	}, nil
}

// DisplayName returns the capitalized project name used in the README title.
func (s *Spec) DisplayName() string {
	return naming.Capitalize(s.Name)
}

// ModuleName returns the Julia module identifier derived from the name.
func (s *Spec) ModuleName() string {
	return naming.ModuleName(s.Name)
}
