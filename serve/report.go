// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"errors"
	"time"

	"github.com/zosmac/procmon/process"
	"github.com/zosmac/procmon/system"
)

// errUnreadable summarizes the reader failures of a report or collection.
// The failures themselves are joined, which gocore.Error would reduce to the first.
var errUnreadable = errors.New("records unreadable, values reported as zero")

type (
	// Report combines the system snapshot with the top processes' snapshots.
	Report struct {
		Timestamp time.Time          `json:"timestamp" yaml:"timestamp"`
		System    system.Snapshot    `json:"system" yaml:"system"`
		Processes []process.Snapshot `json:"processes" yaml:"processes"`
	}
)

// BuildReport reads the system and each of its processes once.
func BuildReport(r *system.Reader) (Report, error) {
	rpt := Report{Timestamp: time.Now()}

	var errs []error
	var err error
	if rpt.System, err = r.Snapshot(); err != nil {
		errs = append(errs, err)
	}

	pids, err := r.ListProcessIds()
	if err != nil {
		return rpt, errors.Join(append(errs, err)...)
	}
	ss, err := process.Snapshots(process.Table(r, pids))
	if err != nil {
		errs = append(errs, err)
	}
	rpt.Processes = process.Top(ss)

	return rpt, errors.Join(errs...)
}

// Failures counts the individual errors joined in err.
func Failures(err error) int {
	if err == nil {
		return 0
	}
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		var n int
		for _, err := range errs.Unwrap() {
			n += Failures(err)
		}
		return n
	}
	return 1
}
