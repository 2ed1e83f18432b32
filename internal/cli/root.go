// internal/cli/root.go
//
// cobra root command: version template and subcommand registration.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/cosmic-orb/internal/tui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "cosmic-orb",
	Short:         "Cosmic orb: guess the hidden number between 1 and 100",
	Long:          "Cosmic orb is a number-guessing game with an orb that glows by proximity, served to browsers or played in the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newServeCmd(),
		newPlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Bad.Render("✖ "+err.Error()))
		os.Exit(1)
	}
}
