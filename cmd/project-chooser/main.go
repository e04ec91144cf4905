// Package main provides the CLI entrypoint for project-chooser.
//
// project-chooser decides which project blocks of a resume to show or hide:
//   - Reads the model's include/exclude recommendation
//   - Resolves free-text titles to blocks (exact, then fuzzy)
//   - Prints the blocks to toggle, optionally writing the updated block list
package main

import (
	"fmt"
	"os"

	"project-chooser/cmd/project-chooser/commands"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
