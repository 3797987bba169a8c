// Copyright © 2021-2026 The Gomon Project.

/*
Package main implements the "procmon" command, which reads the kernel's /proc
records and reports
  - the operating system, kernel, uptime and process counts
  - aggregate CPU and memory utilization
  - command, user, memory and CPU utilization of the processes using the most memory

The main package defines the following command line flags:
  - -config: a YAML file locating the proc root, os-release and passwd records
  - -root:   the proc filesystem directory to read (default /proc)
  - -format: text, json or yaml (default text)

With -port, procmon instead serves the report on /snapshot and Prometheus
metrics on /metrics until interrupted, reading the records afresh on each request.
*/
package main
