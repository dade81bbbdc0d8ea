package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ariel-frischer/semlog/internal/changelog"
	"github.com/ariel-frischer/semlog/internal/config"
	clierrors "github.com/ariel-frischer/semlog/internal/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new changelog document",
	Long: `Create a new changelog document seeded with the standard change-type
catalog and a single internal change recording the generation.

The command refuses to overwrite an existing file. A .yml/.yaml target
produces a YAML document; anything else produces JSON.

Examples:
  semlog init                     # Create changelog.json, UTC offset 0
  semlog init -u 9                # Timestamps interpreted as UTC+9
  semlog init -f project.yaml     # Create a YAML document instead`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().IntP("utc-offset", "u", 0, "UTC time offset in hours")
	initCmd.Flags().StringP("file", "f", config.DefaultFile, "file path of changelog document")
}

func runInit(cmd *cobra.Command, args []string) error {
	offset := cfg.UTCOffsetHours
	if cmd.Flags().Changed("utc-offset") {
		offset, _ = cmd.Flags().GetInt("utc-offset")
	}
	path := resolveFile(cmd)

	if err := changelog.InitFile(path, offset, time.Now()); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &clierrors.CLIError{
				Category: clierrors.AlreadyExists,
				Message:  fmt.Sprintf("%s already exists.", path),
				Err:      err,
			}
		}
		return clierrors.WrapWithMessage(err, clierrors.Unexpected, "creating changelog document")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	return nil
}
