package cmdlets

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rebootCmd = &cobra.Command{
		Use:   "reboot",
		Short: "Request a robot reboot on a running Driver Station",
		Run:   rebootCmdRun,
	}

	restartCodeCmd = &cobra.Command{
		Use:   "restart-code",
		Short: "Request a robot user-code restart on a running Driver Station",
		Run:   restartCodeCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(restartCodeCmd)
}

func rebootCmdRun(c *cobra.Command, args []string) {
	if err := postAction("/api/reboot", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func restartCodeCmdRun(c *cobra.Command, args []string) {
	if err := postAction("/api/restart-code", nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
