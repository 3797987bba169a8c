// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"errors"
	"slices"
	"sort"

	"github.com/zosmac/procmon/system"
)

// Snapshots captures a snapshot of each process, skipping those that exited since they were listed.
func Snapshots(ps []*Process) ([]Snapshot, error) {
	ss := make([]Snapshot, 0, len(ps))
	var errs []error
	for _, p := range ps {
		s, err := p.Snapshot()
		if err != nil {
			if exited(s, err) {
				continue
			}
			errs = append(errs, err)
		}
		ss = append(ss, s)
	}
	return ss, errors.Join(errs...)
}

// exited infers from an empty snapshot whose records are unavailable that the process is gone.
func exited(s Snapshot, err error) bool {
	return s.Command == "" && s.Ram == "" && s.User == "" && s.Uptime == 0 &&
		errors.Is(err, system.ErrUnavailable)
}

// Top returns a copy of snapshots ordered by descending memory utilization, limited to the -top count.
func Top(ss []Snapshot) []Snapshot {
	ss = slices.Clone(ss)
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].MemoryUtilization > ss[j].MemoryUtilization
	})
	if flags.top > 0 && int(flags.top) < len(ss) {
		ss = ss[:flags.top]
	}
	return ss
}
