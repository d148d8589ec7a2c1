package vcs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// MissingAuthorHint is printed when LookupAuthor finds no identity.
const MissingAuthorHint = `Warning: Could not extract author name and email from global git config.
Set name and email with:
git config --global user.name "FIRST_NAME LAST_NAME"
git config --global user.email "EXAMPLE@EMAIL.COM"
`

// Author is the identity configured under the [user] section of git config.
type Author struct {
	Name  string
	Email string
}

// String formats the author as "Name <email>".
func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Init creates a new, non-bare git repository at root.
func Init(root string) error {
	if _, err := git.PlainInit(root, false); err != nil {
		return fmt.Errorf("initializing git repository at %s: %w", root, err)
	}
	return nil
}

// LookupAuthor reads user.name and user.email from the global git config.
// Every global file is read, as git does: the XDG file first, then
// ~/.gitconfig, whose values win. It reports false when either key is
// missing from all of them.
func LookupAuthor() (Author, bool) {
	paths, err := config.Paths(config.GlobalScope)
	if err != nil {
		return Author{}, false
	}

	var author Author
	for _, path := range globalReadOrder(paths) {
		cfg, err := readConfigFile(path)
		if err != nil {
			continue
		}
		if cfg.User.Name != "" {
			author.Name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			author.Email = cfg.User.Email
		}
	}
	if author.Name == "" || author.Email == "" {
		return Author{}, false
	}
	return author, true
}

// globalReadOrder drops duplicates and moves ~/.gitconfig behind the XDG
// config files.
func globalReadOrder(paths []string) []string {
	seen := make(map[string]bool)
	var xdg, home []string
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		if filepath.Base(p) == ".gitconfig" {
			home = append(home, p)
		} else {
			xdg = append(xdg, p)
		}
	}
	return append(xdg, home...)
}

func readConfigFile(path string) (*config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return config.ReadConfig(f)
}

// AuthorFromConfig extracts the author from an already loaded config.
func AuthorFromConfig(cfg *config.Config) (Author, bool) {
	if cfg == nil || cfg.User.Name == "" || cfg.User.Email == "" {
		return Author{}, false
	}
	return Author{Name: cfg.User.Name, Email: cfg.User.Email}, true
}
