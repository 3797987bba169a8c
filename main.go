// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/serve"
	"github.com/zosmac/procmon/system"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	cfg, err := config()
	if err != nil {
		return gocore.Error("config", err, map[string]string{
			"file": flags.config,
		})
	}
	r := system.NewReader(cfg)

	if !system.IsProcfs(cfg.Root) {
		gocore.Error("root", errors.New("not a proc filesystem mount"), map[string]string{
			"root": cfg.Root,
		}).Warn()
	}

	gocore.Error("start", nil, map[string]string{
		"pid":         strconv.Itoa(os.Getpid()),
		"command":     strings.Join(os.Args, " "),
		"executable":  executable(),
		"version":     gocore.Version,
		"user":        gocore.Username(os.Getuid()),
		"clock_ticks": strconv.FormatInt(r.ClockTicks(), 10),
	}).Info()

	if serve.Enabled() {
		if err := serve.Serve(ctx, r); err != nil {
			return gocore.Error("stop", err, map[string]string{
				"command": os.Args[0],
			})
		}
		return nil
	}

	rpt, err := serve.BuildReport(r)
	if n := serve.Failures(err); n > 0 {
		gocore.Error("report", errors.New("records unreadable, values reported as zero"), map[string]string{
			"failures": strconv.Itoa(n),
		}).Warn()
	}
	if err := write(os.Stdout, rpt, string(flags.format)); err != nil {
		return gocore.Error("write", err)
	}
	return nil
}

// config resolves the reader configuration from the -config and -root flags.
func config() (system.Config, error) {
	cfg := system.DefaultConfig()
	if flags.config != "" {
		var err error
		if cfg, err = system.LoadConfig(flags.config); err != nil {
			return cfg, err
		}
	}
	if flags.root != "" {
		cfg.Root = flags.root
	}
	return cfg, nil
}

// executable returns the path of the running command.
func executable() string {
	exe, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	return exe
}
