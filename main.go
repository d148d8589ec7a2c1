package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/resproj/resproj/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// readme is the master document; its directory structure section is copied
// into every generated project README.
//
//go:embed README.md
var readme string

func main() {
	err := cli.Execute(cli.BuildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		MasterDoc: readme,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
