// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"os"
	"strconv"
	"strings"
)

// fields of the process stat record, numbered from 1 as in proc(5).
const (
	statComm      = 2
	statUtime     = 14
	statStime     = 15
	statCutime    = 16
	statCstime    = 17
	statStarttime = 22
)

// ProcessActiveTicks returns the ticks a process and its waited-for children spent in user and kernel mode.
func (r *Reader) ProcessActiveTicks(pid int) (int64, error) {
	name, flds, err := r.pidStat(pid)
	if err != nil {
		return 0, err
	}

	var ticks int64
	for _, n := range []int{statUtime, statStime, statCutime, statCstime} {
		t, err := statField(name, flds, n)
		if err != nil {
			return 0, err
		}
		ticks += t
	}

	return ticks, nil
}

// ProcessUptime returns the seconds after boot at which the process started.
func (r *Reader) ProcessUptime(pid int) (int64, error) {
	name, flds, err := r.pidStat(pid)
	if err != nil {
		return 0, err
	}
	start, err := statField(name, flds, statStarttime)
	if err != nil {
		return 0, err
	}
	return start / r.ticks, nil
}

// ProcessName returns the executable name recorded in the process stat record.
func (r *Reader) ProcessName(pid int) (string, error) {
	name, flds, err := r.pidStat(pid)
	if err != nil {
		return "", err
	}
	if len(flds) < statComm {
		return "", notFound(name, "comm")
	}
	return strings.TrimSuffix(strings.TrimPrefix(flds[statComm-1], "("), ")"), nil
}

// Command returns the first line of the process' command line record, NUL separators intact.
func (r *Reader) Command(pid int) (string, error) {
	return readLine(r.cfg.path(strconv.Itoa(pid), cmdlineFilename))
}

// CommandArgs returns the process' command line split into its arguments.
func (r *Reader) CommandArgs(pid int) ([]string, error) {
	name := r.cfg.path(strconv.Itoa(pid), cmdlineFilename)
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, unavailable(name, err)
	}
	cl := strings.TrimRight(string(buf), "\000")
	if cl == "" {
		return nil, nil
	}
	return strings.Split(cl, "\000"), nil
}

// VirtualMemorySize returns the VmSize of the process in kB.
func (r *Reader) VirtualMemorySize(pid int) (int64, error) {
	name := r.cfg.path(strconv.Itoa(pid), statusFilename)
	v, err := measure(name, "VmSize")
	if err != nil {
		return 0, err
	}
	return atoi64(name, "VmSize", v)
}

// ResidentMemory returns the VmSize of the process in MB as text.
func (r *Reader) ResidentMemory(pid int) (string, error) {
	kb, err := r.VirtualMemorySize(pid)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(kb/1024, 10), nil
}

// OwnerUserId returns the real user id of the process as text.
func (r *Reader) OwnerUserId(pid int) (string, error) {
	return measure(r.cfg.path(strconv.Itoa(pid), statusFilename), "Uid")
}

// OwnerUserName returns the login name of the process' real user.
func (r *Reader) OwnerUserName(pid int) (string, error) {
	uid, err := r.OwnerUserId(pid)
	if err != nil {
		return "", err
	}
	return r.userName(uid)
}

// pidStat splits the process stat record into fields, keeping a comm containing spaces intact.
func (r *Reader) pidStat(pid int) (string, []string, error) {
	name := r.cfg.path(strconv.Itoa(pid), statFilename)
	line, err := readLine(name)
	if err != nil {
		return name, nil, err
	}

	i := strings.IndexByte(line, '(')
	j := strings.LastIndexByte(line, ')')
	if i < 0 || j < i {
		return name, strings.Fields(line), nil
	}

	flds := append(strings.Fields(line[:i]), line[i:j+1])
	return name, append(flds, strings.Fields(line[j+1:])...), nil
}

// statField parses field n of the stat record.
func statField(name string, flds []string, n int) (int64, error) {
	key := "field " + strconv.Itoa(n)
	if n > len(flds) {
		return 0, notFound(name, key)
	}
	return atoi64(name, key, flds[n-1])
}
