package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/modaudit/internal/model"
)

// Config holds all runtime configuration for a modaudit run.
type Config struct {
	DSN            string
	BundlePath     string
	LossRunPath    string
	ClassTablePath string
	OutputPath     string
	ValuationDate  string // YYYY-MM-DD, overrides the bundle's valuation date
	LogFormat      string // "text" or "json"
	Store          bool

	ExecOfficerCap float64  `yaml:"exec_officer_cap"` // 0 = engine default
	LeakKinds      []string `yaml:"leak_kinds"`       // subset of AllLeakKinds to report
}

// yamlConfig is the on-disk YAML rule-set structure.
type yamlConfig struct {
	ExecOfficerCap float64  `yaml:"exec_officer_cap"`
	LeakKinds      []string `yaml:"leak_kinds"`
}

// LoadFromFile reads a YAML rule-set file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.ExecOfficerCap != 0 {
		c.ExecOfficerCap = yc.ExecOfficerCap
	}
	c.LeakKinds = yc.LeakKinds
	return c.validateLeakKinds()
}

// validateLeakKinds checks that every entry in LeakKinds is a known leak
// kind name. If LeakKinds is empty, it defaults to all kinds.
func (c *Config) validateLeakKinds() error {
	if len(c.LeakKinds) == 0 {
		c.LeakKinds = make([]string, len(model.AllLeakKinds))
		for i, info := range model.AllLeakKinds {
			c.LeakKinds[i] = string(info.Kind)
		}
		return nil
	}
	for _, name := range c.LeakKinds {
		if _, ok := model.LeakKindByName(name); !ok {
			return fmt.Errorf("unknown leak kind %q in config", name)
		}
	}
	return nil
}

// EnabledKinds returns the leak-kind filter for the engine, or nil when
// every kind is enabled.
func (c *Config) EnabledKinds() map[model.LeakKind]bool {
	if len(c.LeakKinds) == 0 || len(c.LeakKinds) == len(model.AllLeakKinds) {
		return nil
	}
	m := make(map[model.LeakKind]bool, len(c.LeakKinds))
	for _, name := range c.LeakKinds {
		m[model.LeakKind(name)] = true
	}
	return m
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.BundlePath == "" {
		return fmt.Errorf("--bundle is required")
	}
	if _, err := os.Stat(c.BundlePath); err != nil {
		return fmt.Errorf("bundle not accessible: %w", err)
	}
	if c.LossRunPath != "" {
		if _, err := os.Stat(c.LossRunPath); err != nil {
			return fmt.Errorf("loss run not accessible: %w", err)
		}
	}
	return nil
}

// ValidateWithDSN checks both bundle and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or MODAUDIT_DB_URL is required")
	}
	return nil
}
