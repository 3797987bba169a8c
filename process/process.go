// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/system"
)

type (
	// Pid is the identifier for a process.
	Pid int

	// Source reads the records from which a process is derived. *system.Reader is a Source.
	Source interface {
		ClockTicks() int64
		SystemUptime() (int64, error)
		MemoryTotal() (int64, error)
		ProcessActiveTicks(pid int) (int64, error)
		ProcessUptime(pid int) (int64, error)
		VirtualMemorySize(pid int) (int64, error)
		Command(pid int) (string, error)
		ProcessName(pid int) (string, error)
		ResidentMemory(pid int) (string, error)
		OwnerUserName(pid int) (string, error)
	}

	// Process derives the metrics of a process from its Source on each call.
	Process struct {
		Pid
		src Source
	}

	// Snapshot captures a process' metrics at one point in time.
	Snapshot struct {
		Pid               Pid     `json:"pid" yaml:"pid"`
		Command           string  `json:"command" yaml:"command"`
		Ram               string  `json:"ram_mb" yaml:"ram_mb"`
		User              string  `json:"user" yaml:"user"`
		Uptime            int64   `json:"uptime_seconds" yaml:"uptime_seconds"`
		CPUUtilization    float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
		MemoryUtilization float64 `json:"memory_utilization" yaml:"memory_utilization"`
	}
)

// String formats a pid as a string to comply with fmt.Stringer interface.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}

// New creates a Process for pid. The pid is not checked for existence.
func New(pid Pid, src Source) *Process {
	return &Process{
		Pid: pid,
		src: src,
	}
}

// CPUUtilization returns the CPU time the process consumed over its lifetime as a fraction of its age.
// A process using several CPUs may exceed 1.
func (p *Process) CPUUtilization() (float64, error) {
	ticks, err := p.src.ProcessActiveTicks(int(p.Pid))
	if err != nil {
		return 0, err
	}
	up, err := p.src.SystemUptime()
	if err != nil {
		return 0, err
	}
	start, err := p.src.ProcessUptime(int(p.Pid))
	if err != nil {
		return 0, err
	}

	hz := p.src.ClockTicks()
	age := up - start
	if hz <= 0 || age <= 0 {
		return 0, gocore.Error("cpu utilization", fmt.Errorf("%w: process age not positive", system.ErrUndefined), map[string]string{
			"pid": p.Pid.String(),
			"age": strconv.FormatInt(age, 10),
			"hz":  strconv.FormatInt(hz, 10),
		})
	}

	return float64(ticks) / float64(hz) / float64(age), nil
}

// MemoryUtilization returns the process' virtual memory size as a fraction of system memory.
func (p *Process) MemoryUtilization() (float64, error) {
	size, err := p.src.VirtualMemorySize(int(p.Pid))
	if err != nil {
		return 0, err
	}
	total, err := p.src.MemoryTotal()
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, gocore.Error("memory utilization", fmt.Errorf("%w: MemTotal not positive", system.ErrUndefined), map[string]string{
			"pid": p.Pid.String(),
		})
	}
	return float64(size) / float64(total), nil
}

// Less orders processes by ascending memory utilization, reading both afresh.
func (p *Process) Less(q *Process) bool {
	mp, _ := p.MemoryUtilization()
	mq, _ := q.MemoryUtilization()
	return mp < mq
}

// Command returns the process' command line.
func (p *Process) Command() string {
	cmd, _ := p.src.Command(int(p.Pid))
	return cmd
}

// Ram returns the process' memory size in MB.
func (p *Process) Ram() string {
	ram, _ := p.src.ResidentMemory(int(p.Pid))
	return ram
}

// User returns the login name of the process' owner.
func (p *Process) User() string {
	user, _ := p.src.OwnerUserName(int(p.Pid))
	return user
}

// Uptime returns the seconds after boot at which the process started.
func (p *Process) Uptime() int64 {
	up, _ := p.src.ProcessUptime(int(p.Pid))
	return up
}

// Snapshot reads each of the process' metrics once. Fields that cannot be read are left zero
// and their errors joined in the error returned.
func (p *Process) Snapshot() (Snapshot, error) {
	var errs []error
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	s := Snapshot{Pid: p.Pid}
	var err error
	s.Command, err = p.src.Command(int(p.Pid))
	keep(err)
	if err == nil && s.Command == "" {
		// kernel threads have no command line, show the name as ps does
		var name string
		name, err = p.src.ProcessName(int(p.Pid))
		keep(err)
		if name != "" {
			s.Command = "[" + name + "]"
		}
	}
	s.Ram, err = p.src.ResidentMemory(int(p.Pid))
	keep(err)
	s.User, err = p.src.OwnerUserName(int(p.Pid))
	keep(err)
	s.Uptime, err = p.src.ProcessUptime(int(p.Pid))
	keep(err)
	s.CPUUtilization, err = p.CPUUtilization()
	keep(err)
	s.MemoryUtilization, err = p.MemoryUtilization()
	keep(err)

	return s, errors.Join(errs...)
}

// Table creates a Process for each pid.
func Table(src Source, pids []int) []*Process {
	ps := make([]*Process, len(pids))
	for i, pid := range pids {
		ps[i] = New(Pid(pid), src)
	}
	return ps
}

// Sort orders processes by ascending memory utilization.
func Sort(ps []*Process) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Less(ps[j])
	})
}
