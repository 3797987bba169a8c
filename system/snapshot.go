// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"errors"
)

type (
	// Snapshot gathers the system level metrics. Each is read independently of the others.
	Snapshot struct {
		OperatingSystem   string  `json:"operating_system" yaml:"operating_system"`
		Kernel            string  `json:"kernel" yaml:"kernel"`
		Uptime            int64   `json:"uptime_seconds" yaml:"uptime_seconds"`
		CPUUtilization    float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
		MemoryUtilization float64 `json:"memory_utilization" yaml:"memory_utilization"`
		TotalProcesses    int     `json:"total_processes" yaml:"total_processes"`
		RunningProcesses  int     `json:"running_processes" yaml:"running_processes"`
	}
)

// Snapshot reads each system metric once. Metrics that cannot be read are left zero
// and their errors joined in the error returned.
func (r *Reader) Snapshot() (Snapshot, error) {
	var s Snapshot
	var errs [7]error
	s.OperatingSystem, errs[0] = r.OperatingSystem()
	s.Kernel, errs[1] = r.KernelVersion()
	s.Uptime, errs[2] = r.SystemUptime()
	s.CPUUtilization, errs[3] = r.Utilization()
	s.MemoryUtilization, errs[4] = r.MemoryUtilization()
	s.TotalProcesses, errs[5] = r.TotalProcessCount()
	s.RunningProcesses, errs[6] = r.RunningProcessCount()
	return s, errors.Join(errs[:]...)
}
