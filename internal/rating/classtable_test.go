package rating

import (
	"os"
	"path/filepath"
	"testing"
)

const tableYAML = `vintage: "2026-03"
codes:
  - code: "8810"
    description: "Clerical Office Employees"
    hazard_group: "A"
    elr: 0.09
    d_ratio: 0.31
  - code: "5437"
    description: "Carpentry - Installation of Cabinet Work"
    hazard_group: "E"
    elr: 1.92
    d_ratio: 0.25
  - code: "3632"
    description: "Machine Shop"
    hazard_group: "C"
    elr: 0.88
    d_ratio: 0.28
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadClassTable(t *testing.T) {
	table, err := LoadClassTable(writeTable(t, tableYAML))
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	if table.Vintage != "2026-03" {
		t.Errorf("vintage: got %q", table.Vintage)
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 codes, got %d", table.Len())
	}

	info, ok := table.Lookup("5437")
	if !ok {
		t.Fatal("5437 not found")
	}
	if info.ELR != 1.92 || info.DRatio != 0.25 {
		t.Errorf("5437 rating values: %+v", info)
	}
	if _, ok := table.Lookup("9999"); ok {
		t.Error("9999 should not be found")
	}
}

func TestLoadClassTable_EmptyCode(t *testing.T) {
	_, err := LoadClassTable(writeTable(t, "vintage: \"2026-03\"\ncodes:\n  - description: \"no code\"\n"))
	if err == nil {
		t.Fatal("expected error for entry with empty code")
	}
}

func TestClassCodeInfo_Ranges(t *testing.T) {
	cases := []struct {
		code                             string
		clerical, governing, constr, mfg bool
	}{
		{"8810", true, false, false, false},
		{"5437", false, true, true, false},
		{"5022", false, true, true, false},
		{"3632", false, false, false, true},
		{"9102", false, false, false, false},
	}
	for _, tc := range cases {
		info := ClassCodeInfo{Code: tc.code}
		if info.IsClerical() != tc.clerical {
			t.Errorf("%s IsClerical: got %v", tc.code, info.IsClerical())
		}
		if info.IsGoverning() != tc.governing {
			t.Errorf("%s IsGoverning: got %v", tc.code, info.IsGoverning())
		}
		if info.IsConstruction() != tc.constr {
			t.Errorf("%s IsConstruction: got %v", tc.code, info.IsConstruction())
		}
		if info.IsManufacturing() != tc.mfg {
			t.Errorf("%s IsManufacturing: got %v", tc.code, info.IsManufacturing())
		}
	}
}
