// Package vcs wraps the git operations a scaffold run needs: initializing a
// repository at the project root and reading the author identity from the
// user's global git configuration. It uses go-git and never shells out.
package vcs
