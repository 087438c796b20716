// CLI entry point for CivicDraft.
package main

import (
	"os"

	"github.com/turtacn/CivicDraft/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = commit
	os.Exit(cli.Execute())
}
