package rating

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ClassCodeInfo is one entry of a class-code reference table.
type ClassCodeInfo struct {
	Code        string  `yaml:"code"`
	Description string  `yaml:"description"`
	HazardGroup string  `yaml:"hazard_group"`
	ELR         float64 `yaml:"elr"`
	DRatio      float64 `yaml:"d_ratio"`
}

// Governing classes are the high-rated construction codes that typically
// govern a contracting risk.
var governingCodes = map[string]bool{
	"5403": true, "5437": true, "5645": true,
	"5474": true, "5506": true, "5022": true,
}

// IsClerical reports whether this is clerical code 8810.
func (c ClassCodeInfo) IsClerical() bool {
	return c.Code == "8810"
}

// IsGoverning reports whether this is a common governing class.
func (c ClassCodeInfo) IsGoverning() bool {
	return governingCodes[c.Code]
}

// IsConstruction reports whether the code falls in the contracting range.
func (c ClassCodeInfo) IsConstruction() bool {
	n, err := strconv.Atoi(c.Code)
	return err == nil && n >= 5000 && n <= 6999
}

// IsManufacturing reports whether the code falls in the manufacturing range.
func (c ClassCodeInfo) IsManufacturing() bool {
	n, err := strconv.Atoi(c.Code)
	return err == nil && n >= 2000 && n <= 4999
}

// ClassTable is an injected, versioned class-code lookup. Tables are loaded
// per rating-values vintage and passed in by the caller; the pure engine
// never consults one, only the plan/validation surface does.
type ClassTable struct {
	Vintage string
	byCode  map[string]ClassCodeInfo
}

// classTableFile is the on-disk YAML structure.
type classTableFile struct {
	Vintage string          `yaml:"vintage"`
	Codes   []ClassCodeInfo `yaml:"codes"`
}

// LoadClassTable reads a class-code table from a YAML file.
func LoadClassTable(path string) (*ClassTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class table: %w", err)
	}

	var f classTableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse class table: %w", err)
	}

	t := &ClassTable{Vintage: f.Vintage, byCode: make(map[string]ClassCodeInfo, len(f.Codes))}
	for _, info := range f.Codes {
		if info.Code == "" {
			return nil, fmt.Errorf("class table %s: entry with empty code", path)
		}
		t.byCode[info.Code] = info
	}
	return t, nil
}

// Lookup returns the table entry for a class code, or ok=false.
func (t *ClassTable) Lookup(code string) (ClassCodeInfo, bool) {
	info, ok := t.byCode[code]
	return info, ok
}

// Len returns the number of entries in the table.
func (t *ClassTable) Len() int {
	return len(t.byCode)
}
