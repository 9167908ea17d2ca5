package cmdlets

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
)

var (
	wizardCmd = &cobra.Command{
		Use:   "wizard",
		Short: "Interactively gather team/alliance/position/mode and print the matching run flags",
		Run:   wizardCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func wizardCmdRun(c *cobra.Command, args []string) {
	answers, err := config.RunSetupWizard()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("ds run --team %d --alliance %s --position %s --mode %s\n",
		answers.TeamNumber, answers.Alliance, answers.Position, answers.Mode)
}
