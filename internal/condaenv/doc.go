// Package condaenv provisions the conda environment of a Python project. Both
// operations are best-effort: callers report their failures as warnings and
// carry on.
package condaenv
