package cmdlets

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

var (
	protocolCmd = &cobra.Command{
		Use:   "protocol <era>",
		Short: "Swap the active protocol era on a running Driver Station",
		Args:  cobra.ExactArgs(1),
		Run:   protocolCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(protocolCmd)
}

func protocolCmdRun(c *cobra.Command, args []string) {
	era, err := protocol.ParseEra(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := postAction("/api/protocol", struct{ Era int }{int(era)}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
