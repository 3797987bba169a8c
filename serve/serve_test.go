// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/zosmac/procmon/system"
)

// fixture creates a /proc style tree with one process, 1000, and returns a Reader of it.
func fixture(t *testing.T) *system.Reader {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"os-release":        "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\n",
		"passwd":            "root:x:0:0:root:/root:/bin/bash\nwww:x:33:33:www:/var/www:/usr/sbin/nologin\n",
		"proc/version":      "Linux version 6.1.0-18-amd64 (debian-kernel@lists.debian.org)\n",
		"proc/meminfo":      "MemTotal: 2048000 kB\nMemFree: 512000 kB\n",
		"proc/uptime":       "3661.50 7000.00\n",
		"proc/stat":         "cpu  300 0 100 500 100 0 0 0 0 0\nprocesses 900\nprocs_running 2\n",
		"proc/1000/stat":    "1000 (nginx) S 1 1000 1000 0 -1 0 0 0 0 0 100 50 10 5 20 0 1 0 250000 0 0\n",
		"proc/1000/status":  "Name:\tnginx\nUid:\t33\t33\t33\t33\nVmSize:\t  204800 kB\n",
		"proc/1000/cmdline": "nginx: worker process\000",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return system.NewReader(system.Config{
		Root:       filepath.Join(dir, "proc"),
		OSRelease:  filepath.Join(dir, "os-release"),
		Passwd:     filepath.Join(dir, "passwd"),
		ClockTicks: 100,
	})
}

func TestCollect(t *testing.T) {
	c := &prometheusCollector{reader: fixture(t)}

	expected := `
# HELP procmon_system_uptime_seconds Seconds since boot.
# TYPE procmon_system_uptime_seconds gauge
procmon_system_uptime_seconds 3661
# HELP procmon_system_memory_utilization Fraction of memory not free.
# TYPE procmon_system_memory_utilization gauge
procmon_system_memory_utilization 0.75
# HELP procmon_system_cpu_utilization Fraction of CPU ticks since boot that were active.
# TYPE procmon_system_cpu_utilization gauge
procmon_system_cpu_utilization 0.4
# HELP procmon_process_memory_megabytes Process virtual memory size.
# TYPE procmon_process_memory_megabytes gauge
procmon_process_memory_megabytes{command="nginx: worker process",pid="1000",user="www"} 200
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"procmon_system_uptime_seconds",
		"procmon_system_memory_utilization",
		"procmon_system_cpu_utilization",
		"procmon_process_memory_megabytes",
	); err != nil {
		t.Error(err)
	}

	if n := testutil.CollectAndCount(c, "procmon_system_cpu_ticks_total"); n != 10 {
		t.Errorf("cpu ticks metrics %d, want 10", n)
	}
	if n := testutil.CollectAndCount(c, "procmon_process_cpu_utilization"); n != 1 {
		t.Errorf("process cpu metrics %d, want 1", n)
	}
}

func TestCollectUnavailable(t *testing.T) {
	dir := t.TempDir()
	c := &prometheusCollector{reader: system.NewReader(system.Config{
		Root:       filepath.Join(dir, "proc"),
		OSRelease:  filepath.Join(dir, "os-release"),
		Passwd:     filepath.Join(dir, "passwd"),
		ClockTicks: 100,
	})}

	if n := testutil.CollectAndCount(c, "procmon_system_uptime_seconds", "procmon_process_cpu_utilization"); n != 0 {
		t.Errorf("unavailable sources produced %d metrics, want 0", n)
	}
	if n := testutil.CollectAndCount(c, "procmon_collections_total"); n != 1 {
		t.Errorf("collections metrics %d, want 1", n)
	}
}

func TestHandler(t *testing.T) {
	srv := httptest.NewServer(Handler(fixture(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	var rpt Report
	err = json.NewDecoder(resp.Body).Decode(&rpt)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if rpt.System.OperatingSystem != "Debian GNU/Linux 12 (bookworm)" || rpt.System.Kernel != "6.1.0-18-amd64" {
		t.Errorf("snapshot system = %+v", rpt.System)
	}
	if len(rpt.Processes) != 1 || rpt.Processes[0].User != "www" || rpt.Processes[0].Ram != "200" {
		t.Errorf("snapshot processes = %+v", rpt.Processes)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `procmon_system_info{kernel="6.1.0-18-amd64",os="Debian GNU/Linux 12 (bookworm)"} 1`) {
		t.Errorf("metrics missing system info:\n%s", body)
	}
}

func TestBuildReport(t *testing.T) {
	rpt, err := BuildReport(fixture(t))
	if err != nil {
		t.Fatalf("BuildReport error %v", err)
	}
	if rpt.System.RunningProcesses != 2 || rpt.System.TotalProcesses != 900 {
		t.Errorf("report system = %+v", rpt.System)
	}
	if len(rpt.Processes) != 1 {
		t.Fatalf("report processes = %+v", rpt.Processes)
	}
	p := rpt.Processes[0]
	if p.Pid != 1000 || p.Uptime != 2500 || p.MemoryUtilization != 0.1 {
		t.Errorf("report process = %+v", p)
	}
}

func TestFailures(t *testing.T) {
	one := errors.New("one")
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{one, 1},
		{fmt.Errorf("wrapped: %w", one), 1},
		{errors.Join(one, nil, one), 2},
		{errors.Join(one, errors.Join(one, one)), 3},
	}
	for _, tt := range tests {
		if got := Failures(tt.err); got != tt.want {
			t.Errorf("Failures(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBuildReportFailures(t *testing.T) {
	r := fixture(t)
	if err := os.Remove(filepath.Join(r.Config().Root, "uptime")); err != nil {
		t.Fatal(err)
	}
	_, err := BuildReport(r)
	if !errors.Is(err, system.ErrUnavailable) {
		t.Errorf("BuildReport error %v, want ErrUnavailable", err)
	}
	// uptime feeds the system uptime and the process' cpu utilization
	if n := Failures(err); n != 2 {
		t.Errorf("Failures = %d, want 2: %v", n, err)
	}
}

func TestServeShutdown(t *testing.T) {
	r := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, r)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve = %v", err)
		}
	case <-time.After(shutdownTimeout + 5*time.Second):
		t.Fatal("Serve did not stop after cancel")
	}
}
