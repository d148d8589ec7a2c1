// Package project resolves command-line input into the immutable Spec that
// drives a scaffold run: the target root, the project name, and the optional
// target language.
package project
