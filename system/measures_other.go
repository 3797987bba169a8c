// Copyright © 2021-2026 The Gomon Project.

//go:build !linux

package system

import (
	"github.com/zosmac/gocore"
)

// measures is only supported where the kernel exposes /proc.
func measures(string) (map[string]string, error) {
	return nil, gocore.Unsupported()
}
