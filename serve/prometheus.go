// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/format"
	"github.com/zosmac/procmon/process"
	"github.com/zosmac/procmon/system"
)

type (
	// prometheusCollector complies with the Prometheus Collector interface.
	// Each Collect reads the kernel records afresh.
	prometheusCollector struct {
		reader *system.Reader

		sync.Mutex
		collections    int
		collectionTime time.Duration
	}
)

var (
	// process labels.
	processLabels = []string{"pid", "command", "user"}

	// descs of the metrics reported to Prometheus.
	descs = struct {
		info, uptime, cpu, memory, ticks, total, running   *prometheus.Desc
		processCPU, processMemory, processSize, processAge *prometheus.Desc
		collections, collectionTime                        *prometheus.Desc
	}{
		info: prometheus.NewDesc("procmon_system_info",
			"Operating system and kernel version.", []string{"os", "kernel"}, nil),
		uptime: prometheus.NewDesc("procmon_system_uptime_seconds",
			"Seconds since boot.", nil, nil),
		cpu: prometheus.NewDesc("procmon_system_cpu_utilization",
			"Fraction of CPU ticks since boot that were active.", nil, nil),
		memory: prometheus.NewDesc("procmon_system_memory_utilization",
			"Fraction of memory not free.", nil, nil),
		ticks: prometheus.NewDesc("procmon_system_cpu_ticks_total",
			"Aggregate CPU ticks by state.", []string{"state"}, nil),
		total: prometheus.NewDesc("procmon_system_processes_created_total",
			"Processes created since boot.", nil, nil),
		running: prometheus.NewDesc("procmon_system_processes_running",
			"Processes in a runnable state.", nil, nil),
		processCPU: prometheus.NewDesc("procmon_process_cpu_utilization",
			"CPU time over the process' lifetime as a fraction of its age.", processLabels, nil),
		processMemory: prometheus.NewDesc("procmon_process_memory_utilization",
			"Process virtual memory size as a fraction of system memory.", processLabels, nil),
		processSize: prometheus.NewDesc("procmon_process_memory_megabytes",
			"Process virtual memory size.", processLabels, nil),
		processAge: prometheus.NewDesc("procmon_process_start_seconds",
			"Seconds after boot at which the process started.", processLabels, nil),
		collections: prometheus.NewDesc("procmon_collections_total",
			"Prometheus collections served.", nil, nil),
		collectionTime: prometheus.NewDesc("procmon_collection_seconds_total",
			"Time spent reading records for Prometheus collections.", nil, nil),
	}
)

// Describe returns metric descriptions for prometheusCollector.
// This is irrelevant as Collect() uses prometheus.MustNewConstMetric, leaving the collector unchecked.
func (c *prometheusCollector) Describe(ch chan<- *prometheus.Desc) {
}

// Collect reads the current state of the system and its top processes for Prometheus.
func (c *prometheusCollector) Collect(ch chan<- prometheus.Metric) {
	start := time.Now()
	var errs []error
	gauge := func(desc *prometheus.Desc, v float64, err error, labels ...string) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, labels...)
	}
	counter := func(desc *prometheus.Desc, v float64, err error, labels ...string) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, v, labels...)
	}

	r := c.reader
	osName, err := r.OperatingSystem()
	if err != nil {
		errs = append(errs, err)
	}
	kernel, err := r.KernelVersion()
	gauge(descs.info, 1, err, osName, kernel)

	up, err := r.SystemUptime()
	gauge(descs.uptime, float64(up), err)
	mu, err := r.MemoryUtilization()
	gauge(descs.memory, mu, err)

	states, err := r.CPUStates()
	if err != nil {
		errs = append(errs, err)
	} else {
		for i, ticks := range states {
			counter(descs.ticks, float64(ticks), nil, system.StateNames[i])
		}
		cu, err := states.Utilization()
		gauge(descs.cpu, cu, err)
	}

	total, err := r.TotalProcessCount()
	counter(descs.total, float64(total), err)
	running, err := r.RunningProcessCount()
	gauge(descs.running, float64(running), err)

	if pids, err := r.ListProcessIds(); err != nil {
		errs = append(errs, err)
	} else {
		ss, _ := process.Snapshots(process.Table(r, pids))
		for _, s := range process.Top(ss) {
			labels := []string{s.Pid.String(), format.Command(s.Command, 64), s.User}
			gauge(descs.processCPU, s.CPUUtilization, nil, labels...)
			gauge(descs.processMemory, s.MemoryUtilization, nil, labels...)
			if mb, err := strconv.Atoi(s.Ram); err == nil {
				gauge(descs.processSize, float64(mb), nil, labels...)
			}
			gauge(descs.processAge, float64(s.Uptime), nil, labels...)
		}
	}

	c.Lock()
	c.collections++
	c.collectionTime += time.Since(start)
	counter(descs.collections, float64(c.collections), nil)
	counter(descs.collectionTime, c.collectionTime.Seconds(), nil)
	c.Unlock()

	if n := Failures(errors.Join(errs...)); n > 0 {
		gocore.Error("prometheus collect", errUnreadable, map[string]string{
			"failures": strconv.Itoa(n),
		}).Warn()
	}
}
