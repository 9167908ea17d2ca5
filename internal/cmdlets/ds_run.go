package cmdlets

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/ds"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/joystick"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the Driver Station process",
		Long:  runCmdLongDocs,
		Run:   runCmdRun,
	}

	runCmdLongDocs = `run is a long lived process that speaks the FMS, radio, and robot protocols for one team, dynamically switching between protocol eras and serving an HTTP control/status surface.`

	runTeam     uint16
	runAlliance string
	runPosition string
	runMode     string
	runProtocol string
	runHTTPBind string
	runJoystick bool
)

func init() {
	runCmd.Flags().Uint16Var(&runTeam, "team", 0, "team number")
	runCmd.Flags().StringVar(&runAlliance, "alliance", "RED", "alliance: RED or BLUE")
	runCmd.Flags().StringVar(&runPosition, "position", "1", "station position: 1, 2, or 3")
	runCmd.Flags().StringVar(&runMode, "mode", "TELEOPERATED", "initial control mode: TELEOPERATED, AUTONOMOUS, or TEST")
	runCmd.Flags().StringVar(&runProtocol, "protocol", "2015", "protocol era: 2014, 2015, 2016, or 2020")
	runCmd.Flags().StringVar(&runHTTPBind, "http-bind", ":8080", "address the HTTP control/status surface listens on")
	runCmd.Flags().BoolVar(&runJoystick, "joystick", false, "read real OS joysticks instead of sending zeroed axes")

	rootCmd.AddCommand(runCmd)
}

func runCmdRun(c *cobra.Command, args []string) {
	initLogger("driver-station")

	era, err := protocol.ParseEra(runProtocol)
	if err != nil {
		appLogger.Error("Unknown protocol era", "era", runProtocol, "error", err)
		os.Exit(1)
	}

	var js joystick.Source = joystick.NullSource{}
	if runJoystick {
		osSrc := joystick.NewOSSource(joystick.WithLogger(appLogger))
		if err := osSrc.Bind(0); err != nil {
			appLogger.Warn("No joystick bound, sending zeroed axes", "error", err)
		}
		js = osSrc
		go pollJoystick(osSrc)
	}

	store := config.New(config.WithLogger(appLogger))
	store.SetTeamNumber(runTeam)
	store.SetAlliance(parseAlliance(runAlliance))
	store.SetPosition(parsePosition(runPosition))
	store.SetControlMode(parseMode(runMode))

	drv := ds.New(
		ds.WithLogger(appLogger),
		ds.WithConfig(store),
		ds.WithProtocol(era),
		ds.WithJoystickSource(js),
	)

	if err := drv.Run(); err != nil {
		appLogger.Error("Error starting driver station", "error", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{Addr: runHTTPBind, Handler: drv.HTTPHandler()}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", "error", err)
		}
	}()
	appLogger.Info("Driver station running", "team", runTeam, "protocol", era.String(), "http", runHTTPBind)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutdown requested")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	httpSrv.Shutdown(ctx)
	drv.Stop()
}

// pollJoystick refreshes the OS joystick cache every 20ms, the same
// cadence the robot peer task sends at, until the process exits.
func pollJoystick(src *joystick.OSSource) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		if err := src.Poll(); err != nil {
			appLogger.Trace("Joystick poll error", "error", err)
		}
	}
}

func parseAlliance(s string) config.Alliance {
	if s == "BLUE" {
		return config.AllianceBlue
	}
	return config.AllianceRed
}

func parsePosition(s string) config.Position {
	switch s {
	case "2":
		return config.Position2
	case "3":
		return config.Position3
	default:
		return config.Position1
	}
}

func parseMode(s string) config.ControlMode {
	switch s {
	case "AUTONOMOUS":
		return config.ControlAutonomous
	case "TEST":
		return config.ControlTest
	default:
		return config.ControlTeleoperated
	}
}
