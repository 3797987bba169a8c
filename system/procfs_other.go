// Copyright © 2021-2026 The Gomon Project.

//go:build !linux

package system

// IsProcfs reports whether root is the mount point of a proc filesystem.
func IsProcfs(root string) bool {
	return false
}
