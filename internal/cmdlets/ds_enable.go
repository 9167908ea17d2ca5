package cmdlets

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	enableCmd = &cobra.Command{
		Use:   "enable",
		Short: "Enable the robot on a running Driver Station",
		Run:   enableCmdRun,
	}

	disableCmd = &cobra.Command{
		Use:   "disable",
		Short: "Disable the robot on a running Driver Station",
		Run:   disableCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func enableCmdRun(c *cobra.Command, args []string) {
	setEnabled(true)
}

func disableCmdRun(c *cobra.Command, args []string) {
	setEnabled(false)
}

func setEnabled(want bool) {
	if err := postAction("/api/enabled", struct{ Enabled bool }{want}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
