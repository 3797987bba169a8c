// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OperatingSystem returns the PRETTY_NAME of the os-release record.
func (r *Reader) OperatingSystem() (string, error) {
	name := r.cfg.OSRelease
	f, err := os.Open(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		k, v, ok := strings.Cut(sc.Text(), "=")
		if !ok || strings.TrimSpace(k) != "PRETTY_NAME" {
			continue
		}
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		return strings.ReplaceAll(v, "_", " "), nil
	}
	if err := sc.Err(); err != nil {
		return "", unavailable(name, err)
	}

	return "", notFound(name, "PRETTY_NAME")
}

// KernelVersion returns the release token of the version record, e.g. "Linux version 6.8.0-45-generic ...".
func (r *Reader) KernelVersion() (string, error) {
	name := r.cfg.path(versionFilename)
	line, err := readLine(name)
	if err != nil {
		return "", err
	}
	flds := strings.Fields(line)
	if len(flds) < 3 {
		return "", notFound(name, "release")
	}
	return flds[2], nil
}

// ListProcessIds returns the ids of the numerically named directories of the root, in directory order.
func (r *Reader) ListProcessIds() ([]int, error) {
	entries, err := os.ReadDir(r.cfg.Root)
	if err != nil {
		return nil, unavailable(r.cfg.Root, err)
	}

	pids := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || !isDigits(entry.Name()) {
			continue
		}
		if pid, err := strconv.Atoi(entry.Name()); err == nil {
			pids = append(pids, pid)
		}
	}

	return pids, nil
}

// SystemUptime returns the seconds since boot, truncated.
func (r *Reader) SystemUptime() (int64, error) {
	name := r.cfg.path(uptimeFilename)
	line, err := readLine(name)
	if err != nil {
		return 0, err
	}
	flds := strings.Fields(line)
	if len(flds) == 0 {
		return 0, notFound(name, "uptime")
	}
	up, err := strconv.ParseFloat(flds[0], 64)
	if err != nil {
		return 0, malformed(name, "uptime", err)
	}
	if up < 0 {
		return 0, malformed(name, "uptime", fmt.Errorf("negative value %s", flds[0]))
	}
	return int64(up), nil
}

// TotalProcessCount returns the count of processes created since boot.
func (r *Reader) TotalProcessCount() (int, error) {
	return r.statCount("processes")
}

// RunningProcessCount returns the count of processes in a runnable state.
func (r *Reader) RunningProcessCount() (int, error) {
	return r.statCount("procs_running")
}

// statCount reads a count keyed by key from the stat record.
func (r *Reader) statCount(key string) (int, error) {
	name := r.cfg.path(statFilename)
	v, err := scanKey(name, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, malformed(name, key, err)
	}
	return n, nil
}

// isDigits reports whether s is a non-empty string of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
