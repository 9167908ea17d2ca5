// Package cmdlets contains the main entrypoints of the various
// functions that the ds tool can perform.
package cmdlets

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	// Blank-imported so each era descriptor's init() registers itself
	// with pkg/protocol before any cmdlet runs.
	_ "github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2014"
	_ "github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2015"
	_ "github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2016"
	_ "github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol/frc2020"
)

var (
	// Version is the release number for this build
	Version = "dev"

	// Commit is the specific git hash
	Commit = "UNKNOWN"

	// BuildDate is the build timestamp
	BuildDate = time.Now().String()

	rootCmd = &cobra.Command{
		Use:   "ds",
		Short: "Entrypoint for all Driver Station commands",
		Long:  rootCmdLongDocs,
	}
	rootCmdLongDocs = `ds runs and controls a field-robotics Driver Station: it speaks the FMS/radio/robot UDP protocols, tracks match state, and exposes both a CLI and an HTTP surface for driving it.`

	appLogger = hclog.NewNullLogger()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&addrFlag, "addr", defaultAddr, "base URL of a running Driver Station's HTTP API")
}

// Entrypoint is the entrypoint into all cmdlets, it will dispatch to
// the right one.
func Entrypoint() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func initLogger(name string) {
	ll := os.Getenv("LOG_LEVEL")
	if ll == "" {
		ll = "INFO"
	}
	appLogger = hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(ll),
	})
	appLogger.Info("Log level", "level", appLogger.GetLevel())
}
