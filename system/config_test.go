// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procmon.yaml")
	content := "root: /host/proc\nclock_ticks: 250\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error %v", err)
	}
	want := Config{
		Root:       "/host/proc",
		OSRelease:  "/etc/os-release",
		Passwd:     "/etc/passwd",
		ClockTicks: 250,
	}
	if cfg != want {
		t.Errorf("LoadConfig = %+v, want %+v", cfg, want)
	}
	if r := NewReader(cfg); r.ClockTicks() != 250 {
		t.Errorf("ClockTicks = %d, want 250", r.ClockTicks())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("LoadConfig of absent file succeeded")
	}

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("root: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig of malformed file succeeded")
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig on error = %+v, want defaults", cfg)
	}
}

func TestClockTicksDefault(t *testing.T) {
	if r := NewReader(Config{Root: t.TempDir()}); r.ClockTicks() <= 0 {
		t.Errorf("ClockTicks = %d, want positive", r.ClockTicks())
	}
}
