// Package cli implements the civicdraft command-line interface for scripted
// use of the inference pipeline and the authority directory.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/CivicDraft/internal/config"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Options holds the global CLI flags.
type Options struct {
	ConfigPath string
	Output     string // "text" | "json"
}

// NewRootCommand builds the civicdraft root command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "civicdraft",
		Short:         "CivicDraft CLI — classify civic issues and find the right authority",
		Long:          "CivicDraft helps citizens turn a plain-language description of a civic issue\ninto a classified intent, applicable legal references, and the authority to\naddress. Nothing leaves the machine: all analysis runs locally.",
		Version:       fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: built-in defaults)")
	pf.StringVarP(&opts.Output, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(newInferCmd(opts))
	cmd.AddCommand(newResolveCmd(opts))

	return cmd
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves the effective configuration: an explicit file when
// given, otherwise environment overrides on top of the defaults.
func loadConfig(opts *Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
