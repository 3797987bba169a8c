// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zosmac/procmon/format"
	"github.com/zosmac/procmon/serve"
	"gopkg.in/yaml.v3"
)

const (
	// commandWidth limits the command column of the text report.
	commandWidth = 60
)

// write renders the report to w in the format selected by the -format flag.
func write(w io.Writer, rpt serve.Report, f string) error {
	switch f {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rpt)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rpt); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return writeText(w, rpt)
	}
	return fmt.Errorf("invalid format %q", f)
}

// writeText renders the system header and a table of the top processes.
func writeText(w io.Writer, rpt serve.Report) error {
	s := rpt.System
	fmt.Fprintf(w, "%s  kernel %s  up %s\n",
		s.OperatingSystem,
		s.Kernel,
		format.ElapsedTime(s.Uptime),
	)
	fmt.Fprintf(w, "CPU %s  Memory %s  Processes %d created, %d running\n\n",
		format.Percent(s.CPUUtilization),
		format.Percent(s.MemoryUtilization),
		s.TotalProcesses,
		s.RunningProcesses,
	)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PID\tUSER\tCPU%\tMEM%\tRAM[MB]\tSTARTED\t  COMMAND")
	for _, p := range rpt.Processes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t  %s\n",
			p.Pid,
			p.User,
			format.Percent(p.CPUUtilization),
			format.Percent(p.MemoryUtilization),
			p.Ram,
			format.ElapsedTime(p.Uptime),
			format.Command(p.Command, commandWidth),
		)
	}
	return tw.Flush()
}
