// Package cli implements the semlog command line interface: the root
// command, the init/calc/print subcommands, and the translation of
// domain errors into process exit codes.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ariel-frischer/semlog/internal/changelog"
	"github.com/ariel-frischer/semlog/internal/config"
	clierrors "github.com/ariel-frischer/semlog/internal/errors"
	"github.com/ariel-frischer/semlog/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "semlog",
	Short: "Derive a semantic version and changelog from dated changes",
	Long: `semlog derives a semantic version and a human-readable changelog
from a structured document of dated changes and releases.

The version history is recomputed from the full document on every run:
changes are partitioned into release-bounded groups chronologically, and
each group bumps the version according to the most severe change it
contains (major > minor > patch; internal changes never bump).

While the major version is 0, a breaking change under a private release
is demoted to a minor bump; the first major bump requires a public
release.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return clierrors.NewArgumentErrorWithUsage("command is required", "semlog <init|calc|print> [flags]")
	},
}

// cfg holds the loaded tool configuration. Subcommands consult it for
// values whose flags were not explicitly set.
var cfg = &config.Configuration{File: config.DefaultFile}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return clierrors.Wrap(err, clierrors.Unexpected)
		}
		cfg = loaded
		return nil
	}
}

// minGoRelease is the oldest Go 1.x runtime release semlog supports.
const minGoRelease = 21

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if !runtimeSupported(runtime.Version()) {
		fmt.Fprintf(os.Stderr, "go 1.%d or above is required.\n", minGoRelease)
		return ExitUnsupportedRuntime
	}

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		// Errors cobra raises itself are argument errors: unknown
		// subcommands, bad flags. Everything the commands produce is
		// wrapped before it gets here.
		cliErr = clierrors.NewArgumentErrorWithUsage(err.Error(), "semlog <init|calc|print> [flags]")
	}
	clierrors.PrintError(cliErr)
	if cliErr.Category == clierrors.Argument {
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
	}
	return exitCode(cliErr.Category)
}

// exitCode maps an error category onto its process exit code.
func exitCode(category clierrors.ErrorCategory) int {
	switch category {
	case clierrors.Format:
		return ExitFormatError
	case clierrors.AlreadyExists:
		return ExitAlreadyExists
	case clierrors.Argument:
		return ExitArgumentError
	default:
		return ExitUnexpected
	}
}

// runtimeSupported reports whether the given runtime.Version value meets
// the minimum supported release. Development and future toolchains pass.
func runtimeSupported(v string) bool {
	if !strings.HasPrefix(v, "go1.") {
		return true
	}
	rest := strings.TrimPrefix(v, "go1.")
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	minor, err := strconv.Atoi(rest[:i])
	if err != nil {
		return true
	}
	return minor >= minGoRelease
}

// resolveFile returns the changelog document path: the -f flag when set,
// otherwise the configured default.
func resolveFile(cmd *cobra.Command) string {
	if cmd.Flags().Changed("file") {
		path, _ := cmd.Flags().GetString("file")
		return path
	}
	if cfg.File != "" {
		return cfg.File
	}
	return config.DefaultFile
}

// loadChangeLog reads, parses, and builds the change-group list from the
// document at path, classifying failures into the CLI error taxonomy.
func loadChangeLog(path string) (*changelog.ChangeLog, error) {
	doc, err := changelog.LoadFile(path)
	if err != nil {
		if changelog.IsFormatError(err) {
			return nil, clierrors.Wrap(err, clierrors.Format)
		}
		return nil, clierrors.Wrap(err, clierrors.Unexpected)
	}
	log, err := changelog.BuildDocument(doc)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Unexpected)
	}
	return log, nil
}
