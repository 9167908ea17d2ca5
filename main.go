package main

import (
	"github.com/FRC-Utilities/LibDS-Legacy/internal/cmdlets"
)

// Version, Commit, and BuildDate are stamped in via -ldflags at build
// time and forwarded into cmdlets for the version cmdlet to print.
var (
	Version   = "dev"
	Commit    = "UNKNOWN"
	BuildDate = "unknown"
)

func main() {
	cmdlets.Version = Version
	cmdlets.Commit = Commit
	cmdlets.BuildDate = BuildDate

	cmdlets.Entrypoint()
}
