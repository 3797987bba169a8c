// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"github.com/tklauser/go-sysconf"
	"github.com/zosmac/gocore"
)

// userHz is the tick rate the kernel exports to user space on nearly every platform.
const userHz = 100

// clockTicks queries the kernel's clock ticks per second (CLK_TCK).
func clockTicks() int64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		gocore.Error("sysconf SC_CLK_TCK", err).Warn()
		return userHz
	}
	return hz
}
