package cli

import (
	"github.com/ariel-frischer/semlog/internal/changelog"
	"github.com/ariel-frischer/semlog/internal/config"
	clierrors "github.com/ariel-frischer/semlog/internal/errors"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the full rendered changelog",
	Long: `Recompute the full version history from the changelog document and
print it newest-first: one header line per release with its derived
version, followed by that release's changes in chronological order.

Examples:
  semlog print                    # Styled output on a terminal
  semlog print --plain            # Plain text (no styling, no wrapping)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().StringP("file", "f", config.DefaultFile, "file path of changelog document")
	printCmd.Flags().Bool("plain", false, "Plain text output (no styling)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	log, err := loadChangeLog(resolveFile(cmd))
	if err != nil {
		return err
	}

	plain := cfg.Plain
	if cmd.Flags().Changed("plain") {
		plain, _ = cmd.Flags().GetBool("plain")
	}

	if err := log.Render(cmd.OutOrStdout(), changelog.FormatOptions{Plain: plain}); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Unexpected, "rendering changelog")
	}
	return nil
}
