package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2025-06-01" {
		t.Errorf("roundtrip: got %s", d)
	}

	if _, err := ParseDate("06/01/2025"); err == nil {
		t.Error("only YYYY-MM-DD is accepted here")
	}
}

func TestDate_JSON(t *testing.T) {
	type doc struct {
		When Date  `json:"when"`
		Last *Date `json:"last,omitempty"`
	}

	var parsed doc
	if err := json.Unmarshal([]byte(`{"when":"2024-03-10","last":null}`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.When != NewDate(2024, time.March, 10) {
		t.Errorf("when: got %s", parsed.When)
	}
	if parsed.Last != nil && !parsed.Last.IsZero() {
		t.Errorf("null date should stay zero, got %s", parsed.Last)
	}

	out, err := json.Marshal(doc{When: NewDate(2024, time.March, 10)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"when":"2024-03-10"}` {
		t.Errorf("marshal: got %s", out)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := NewDate(2024, time.January, 10)
	b := NewDate(2024, time.December, 31)
	if got := a.DaysUntil(b); got != 356 {
		t.Errorf("days: got %d want 356", got)
	}
	if got := b.DaysUntil(a); got != -356 {
		t.Errorf("reverse days: got %d want -356", got)
	}
}
