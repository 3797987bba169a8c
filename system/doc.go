// Copyright © 2021-2026 The Gomon Project.

/*
Package system reads the kernel's /proc style text records:
  - operating system name and kernel version
  - process ids, counts and uptime
  - memory and aggregate CPU tick counters
  - per process ticks, start time, command, memory and owner

Every Reader method opens its source afresh and returns a zero value with an
error wrapping ErrUnavailable, ErrNotFound, ErrMalformed or ErrUndefined when
the value cannot be produced.
*/
package system
