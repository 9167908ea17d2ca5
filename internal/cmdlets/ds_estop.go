package cmdlets

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	estopCmd = &cobra.Command{
		Use:   "estop",
		Short: "Trip the emergency stop on a running Driver Station",
		Run:   estopCmdRun,
	}

	estopClearCmd = &cobra.Command{
		Use:   "estop-clear",
		Short: "Clear a running Driver Station's emergency stop",
		Run:   estopClearCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(estopCmd)
	rootCmd.AddCommand(estopClearCmd)
}

func estopCmdRun(c *cobra.Command, args []string) {
	if err := postAction("/api/estop", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func estopClearCmdRun(c *cobra.Command, args []string) {
	if err := postAction("/api/estop/clear", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
