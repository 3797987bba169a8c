// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"fmt"
	"slices"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		config string
		root   string
		format outputFormat
	}{
		format: "text",
	}

	// outputFormats lists the valid -format values.
	outputFormats = []string{"text", "json", "yaml"}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.config,
		"config",
		"[-config <file>]",
		"YAML `file` locating the proc root, os-release and passwd records",
	)
	gocore.Flags.Var(
		&flags.root,
		"root",
		"[-root <directory>]",
		"The proc filesystem `directory` to read, overriding the configuration (default /proc)",
	)
	gocore.Flags.Var(
		&flags.format,
		"format",
		"[-format text|json|yaml]",
		"The `format` of the report",
	)
}

// outputFormat is a command line flag type.
type outputFormat string

// Set is a flag.Value interface method to enable outputFormat as a command line flag.
func (f *outputFormat) Set(s string) error {
	if !slices.Contains(outputFormats, s) {
		return fmt.Errorf("invalid format %q, must be one of %v", s, outputFormats)
	}
	*f = outputFormat(s)
	return nil
}

// String is a flag.Value interface method to enable outputFormat as a command line flag.
func (f *outputFormat) String() string {
	return string(*f)
}
