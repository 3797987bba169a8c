// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"golang.org/x/sys/unix"
)

// IsProcfs reports whether root is the mount point of a proc filesystem.
func IsProcfs(root string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(root, &st); err != nil {
		return false
	}
	return st.Type == unix.PROC_SUPER_MAGIC
}
