// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
)

var (
	// ErrUnavailable reports a source that is missing or unreadable.
	ErrUnavailable = errors.New("source unavailable")

	// ErrNotFound reports a readable source lacking the requested key.
	ErrNotFound = errors.New("key not found")

	// ErrMalformed reports a field that does not parse.
	ErrMalformed = errors.New("malformed field")

	// ErrUndefined reports a ratio whose denominator is not positive.
	ErrUndefined = errors.New("ratio undefined")
)

type (
	// Reader translates the kernel's text records into typed values.
	// Every call reads its sources afresh.
	Reader struct {
		cfg   Config
		ticks int64
	}
)

// NewReader creates a Reader for the sources located by cfg.
func NewReader(cfg Config) *Reader {
	ticks := cfg.ClockTicks
	if ticks <= 0 {
		ticks = clockTicks()
	}
	return &Reader{
		cfg:   cfg,
		ticks: ticks,
	}
}

// Config returns the Reader's configuration.
func (r *Reader) Config() Config {
	return r.cfg
}

// ClockTicks returns the kernel's clock ticks per second.
func (r *Reader) ClockTicks() int64 {
	return r.ticks
}

// unavailable reports an open or read failure of a source.
func unavailable(name string, err error) error {
	var msg gocore.LogMessage
	if errors.As(err, &msg) {
		err = msg.E // gocore.Error would percolate msg, dropping the sentinel
	}
	return gocore.Error(name, fmt.Errorf("%w: %w", ErrUnavailable, err))
}

// notFound reports key missing from source name.
func notFound(name, key string) error {
	return gocore.Error(name, ErrNotFound, map[string]string{
		"key": key,
	})
}

// malformed reports a parse failure of key in source name.
func malformed(name, key string, err error) error {
	return gocore.Error(name, fmt.Errorf("%w: %w", ErrMalformed, err), map[string]string{
		"key": key,
	})
}

// undefined reports a non-positive denominator.
func undefined(source, what string) error {
	return gocore.Error(source, fmt.Errorf("%w: %s", ErrUndefined, what))
}

// readLine returns the first line of a source.
func readLine(name string) (string, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	line, _, _ := strings.Cut(string(buf), "\n")
	return line, nil
}

// scanLine scans a source for the first line whose first field is key and returns the rest of the line.
func scanLine(name, key string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		k, v, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		if k == key {
			return v, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", unavailable(name, err)
	}

	return "", notFound(name, key)
}

// scanKey returns the value field of the first line of a source keyed by key.
func scanKey(name, key string) (string, error) {
	v, err := scanLine(name, key)
	if err != nil {
		return "", err
	}
	flds := strings.Fields(v)
	if len(flds) == 0 {
		return "", notFound(name, key)
	}
	return flds[0], nil
}

// measure looks up key in a "Key: value" source.
func measure(name, key string) (string, error) {
	m, err := measures(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	v, ok := m[key]
	if !ok {
		return "", notFound(name, key)
	}
	return v, nil
}

// atoi64 parses a decimal field, attributing failures to the source and key.
func atoi64(name, key, s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, malformed(name, key, err)
	}
	return i, nil
}
