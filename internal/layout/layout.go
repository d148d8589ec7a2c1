// Package layout creates the fixed directory tree of a new research project.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirPerm is the permission used for every created directory.
const DirPerm os.FileMode = 0755

// Directories lists the subdirectories created under every project root, in
// creation order.
var Directories = []string{"src", "raw", "results", "paper", "tmp", "cache", "choices"}

// Build creates root and then each entry of Directories beneath it. Root
// must not exist yet. The first failure aborts; directories created before
// it are left in place.
func Build(fs afero.Fs, root string) error {
	if err := fs.Mkdir(root, DirPerm); err != nil {
		return fmt.Errorf("creating main project directory %s: %w", root, err)
	}
	for _, sub := range Directories {
		path := filepath.Join(root, sub)
		if err := fs.Mkdir(path, DirPerm); err != nil {
			return fmt.Errorf("creating sub-directory %s: %w", path, err)
		}
	}
	return nil
}
