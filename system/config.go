// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// record names under the Config Root.
	versionFilename = "version"
	meminfoFilename = "meminfo"
	uptimeFilename  = "uptime"
	statFilename    = "stat"
	statusFilename  = "status"
	cmdlineFilename = "cmdline"
)

type (
	// Config locates the sources the Reader parses.
	Config struct {
		Root       string `yaml:"root"`
		OSRelease  string `yaml:"os_release"`
		Passwd     string `yaml:"passwd"`
		ClockTicks int64  `yaml:"clock_ticks"`
	}
)

// DefaultConfig returns the configuration of the live system.
func DefaultConfig() Config {
	return Config{
		Root:      "/proc",
		OSRelease: "/etc/os-release",
		Passwd:    "/etc/passwd",
	}
}

// LoadConfig overlays the YAML configuration file at path onto the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// path joins the root with the record names.
func (cfg Config) path(names ...string) string {
	return filepath.Join(append([]string{cfg.Root}, names...)...)
}
