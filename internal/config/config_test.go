package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/modaudit/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "exec_officer_cap: 62400\nleak_kinds:\n  - era_medical_only\n  - rule_4c_denial\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.ExecOfficerCap != 62_400 {
		t.Errorf("exec cap: got %.0f", c.ExecOfficerCap)
	}
	if len(c.LeakKinds) != 2 {
		t.Fatalf("expected 2 leak kinds, got %d", len(c.LeakKinds))
	}

	kinds := c.EnabledKinds()
	if len(kinds) != 2 || !kinds[model.LeakERAMedicalOnly] || !kinds[model.LeakRule4CDenial] {
		t.Errorf("enabled kinds: %v", kinds)
	}
}

func TestLoadFromFile_UnknownLeakKind(t *testing.T) {
	path := writeConfig(t, "leak_kinds:\n  - era_medical_only\n  - bogus_kind\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown leak kind")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	path := writeConfig(t, "leak_kinds: []\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.LeakKinds) != len(model.AllLeakKinds) {
		t.Errorf("expected all %d kinds, got %d", len(model.AllLeakKinds), len(c.LeakKinds))
	}
	if c.EnabledKinds() != nil {
		t.Error("full set should mean no filter")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error without a bundle path")
	}

	bundle := filepath.Join(t.TempDir(), "bundle.json")
	if err := os.WriteFile(bundle, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	c.BundlePath = bundle
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	c.LossRunPath = filepath.Join(t.TempDir(), "absent.parquet")
	if err := c.Validate(); err == nil {
		t.Error("expected error for inaccessible loss run")
	}
}

func TestValidateWithDSN(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "bundle.json")
	if err := os.WriteFile(bundle, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Config{BundlePath: bundle}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error without a DSN")
	}
	c.DSN = "postgresql://localhost/audit"
	if err := c.ValidateWithDSN(); err != nil {
		t.Errorf("ValidateWithDSN: %v", err)
	}
}
