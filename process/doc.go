// Copyright © 2021-2026 The Gomon Project.

/*
Package process models a single process over a Source of kernel records:
  - CPU utilization over the process' lifetime
  - memory utilization, and ordering of processes by it
  - point in time snapshots of command, memory, user and uptime
*/
package process
