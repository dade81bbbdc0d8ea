package cli

import (
	"fmt"

	"github.com/ariel-frischer/semlog/internal/config"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Print the latest derived semantic version",
	Long: `Recompute the full version history from the changelog document and
print only the newest version, one line, suitable for scripting:

  VERSION=$(semlog calc -f changelog.json)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringP("file", "f", config.DefaultFile, "file path of changelog document")
}

func runCalc(cmd *cobra.Command, args []string) error {
	log, err := loadChangeLog(resolveFile(cmd))
	if err != nil {
		return err
	}
	latest := log.LatestVersion()
	fmt.Fprintln(cmd.OutOrStdout(), latest.String())
	return nil
}
