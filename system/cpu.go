// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"strings"
)

// positions of the CPU state counters on the stat record's cpu line.
const (
	StateUser = iota
	StateNice
	StateSystem
	StateIdle
	StateIoWait
	StateIrq
	StateSoftIrq
	StateSteal
	StateGuest
	StateGuestNice
	cpuStates
)

var (
	// StateNames labels the CPU state counters by position.
	StateNames = [cpuStates]string{
		"user", "nice", "system", "idle", "iowait", "irq", "softirq", "steal", "guest", "guest_nice",
	}
)

type (
	// CPUStates holds the aggregate CPU tick counters in the kernel's field order.
	CPUStates [cpuStates]int64
)

// Active returns the ticks spent in all non-idle states.
func (c CPUStates) Active() int64 {
	return c[StateUser] + c[StateNice] + c[StateSystem] + c[StateIrq] + c[StateSoftIrq] + c[StateSteal] + c[StateGuest] + c[StateGuestNice]
}

// Idle returns the ticks spent idle or waiting on I/O.
func (c CPUStates) Idle() int64 {
	return c[StateIdle] + c[StateIoWait]
}

// Total returns all ticks.
func (c CPUStates) Total() int64 {
	return c.Active() + c.Idle()
}

// Utilization returns the fraction of all ticks that were active.
func (c CPUStates) Utilization() (float64, error) {
	total := c.Total()
	if total <= 0 {
		return 0, undefined("cpu", "no CPU ticks")
	}
	return float64(c.Active()) / float64(total), nil
}

// CPUStates reads the aggregate cpu line of the stat record.
// Counters that an older kernel does not report read as zero.
func (r *Reader) CPUStates() (CPUStates, error) {
	var c CPUStates
	name := r.cfg.path(statFilename)
	v, err := scanLine(name, "cpu")
	if err != nil {
		return c, err
	}

	flds := strings.Fields(v)
	for i := 0; i < len(flds) && i < len(c); i++ {
		if c[i], err = atoi64(name, "cpu", flds[i]); err != nil {
			return CPUStates{}, err
		}
	}

	return c, nil
}

// AggregateActiveTicks returns the system's non-idle ticks.
func (r *Reader) AggregateActiveTicks() (int64, error) {
	c, err := r.CPUStates()
	return c.Active(), err
}

// AggregateIdleTicks returns the system's idle and iowait ticks.
func (r *Reader) AggregateIdleTicks() (int64, error) {
	c, err := r.CPUStates()
	return c.Idle(), err
}

// AggregateTotalTicks returns all of the system's ticks.
func (r *Reader) AggregateTotalTicks() (int64, error) {
	c, err := r.CPUStates()
	return c.Total(), err
}

// Utilization returns the system's CPU utilization from a single read of the cpu counters.
// It is the share of ticks since boot that were active, not a rate between two samples.
func (r *Reader) Utilization() (float64, error) {
	c, err := r.CPUStates()
	if err != nil {
		return 0, err
	}
	return c.Utilization()
}
