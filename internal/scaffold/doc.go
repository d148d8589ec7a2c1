// Package scaffold renders and writes the files of a new research project.
// It powers the root command: Generate creates the directory layout,
// initializes git, and writes .gitignore, README.md and the language-specific
// starter files from templates embedded in the binary.
package scaffold
