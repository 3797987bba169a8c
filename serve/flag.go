// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		port int
	}{
		port: 0,
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number for the procmon metrics server; 0 reports once and exits",
	)

	gocore.Flags.CommandDescription = `Reports the local host's
	system state:
		• operating system and kernel
		• uptime
		• cpu and memory utilization
		• process counts
	and per process:
		• command and user
		• memory size and utilization
		• cpu utilization`
}

// Enabled reports whether the -port flag requests the metrics server.
func Enabled() bool {
	return flags.port > 0
}
