// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCPUStatesTotal(t *testing.T) {
	tests := []CPUStates{
		{},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{0, 0, 0, 1000},
		{500, 0, 250, 0, 0, 0, 0, 0, 0, 0},
		{1 << 40, 1 << 30, 1 << 20, 1 << 41, 1 << 10, 3, 5, 7, 11, 13},
	}

	for _, c := range tests {
		if c.Total() != c.Active()+c.Idle() {
			t.Errorf("%v Total %d != Active %d + Idle %d", c, c.Total(), c.Active(), c.Idle())
		}
	}
}

func TestCPUStatesPositions(t *testing.T) {
	var c CPUStates
	c[StateIdle] = 40
	c[StateIoWait] = 2
	c[StateGuestNice] = 3
	c[StateUser] = 5
	if c.Idle() != 42 {
		t.Errorf("Idle = %d, want 42", c.Idle())
	}
	if c.Active() != 8 {
		t.Errorf("Active = %d, want 8", c.Active())
	}
}

func TestReaderCPUStates(t *testing.T) {
	r := NewReader(fixture(t))
	c, err := r.CPUStates()
	if err != nil {
		t.Fatalf("CPUStates error %v", err)
	}
	if c != (CPUStates{100, 20, 30, 400, 50, 6, 7, 8, 9, 10}) {
		t.Errorf("CPUStates = %v", c)
	}

	active, _ := r.AggregateActiveTicks()
	idle, _ := r.AggregateIdleTicks()
	total, _ := r.AggregateTotalTicks()
	if active != 190 || idle != 450 || total != 640 {
		t.Errorf("ticks active %d idle %d total %d, want 190 450 640", active, idle, total)
	}

	u, err := r.Utilization()
	if err != nil || u != 190.0/640.0 {
		t.Errorf("Utilization = %v, %v, want %v", u, err, 190.0/640.0)
	}
}

func TestReaderCPUStatesShortLine(t *testing.T) {
	cfg := fixture(t)
	if err := os.WriteFile(filepath.Join(cfg.Root, "stat"), []byte("cpu  10 0 10 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewReader(cfg)
	c, err := r.CPUStates()
	if err != nil || c != (CPUStates{10, 0, 10, 80}) {
		t.Errorf("CPUStates = %v, %v", c, err)
	}
	if u, err := r.Utilization(); err != nil || u != 0.2 {
		t.Errorf("Utilization = %v, %v, want 0.2", u, err)
	}
}

func TestUtilizationUndefined(t *testing.T) {
	cfg := fixture(t)
	if err := os.WriteFile(filepath.Join(cfg.Root, "stat"), []byte("cpu  0 0 0 0 0 0 0 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	u, err := NewReader(cfg).Utilization()
	if u != 0 || !errors.Is(err, ErrUndefined) {
		t.Errorf("Utilization = %v, %v, want 0 and ErrUndefined", u, err)
	}
}
