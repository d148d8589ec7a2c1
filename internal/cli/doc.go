// Package cli defines the Cobra root command of the resproj CLI. It only
// handles flag parsing, configuration loading and output formatting; the
// scaffolding itself lives in the scaffold package.
package cli
