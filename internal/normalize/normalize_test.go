package normalize

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDate_Formats(t *testing.T) {
	want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-03-10", "03/10/2024", "3/10/2024", "03-10-2024", "2024/03/10", "03/10/24"} {
		got := ParseDate(s)
		if got == nil {
			t.Errorf("%q: no parse", s)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: got %s", s, got)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "not a date", "2024-13-40"} {
		if got := ParseDate(s); got != nil {
			t.Errorf("%q: expected nil, got %s", s, got)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.2346, 3, 1.235},
		{1.2344, 3, 1.234},
		{2.71828, 2, 2.72},
		{-2.71828, 3, -2.718},
		{100, 2, 100},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.v, tc.places); got != tc.want {
			t.Errorf("RoundTo(%v, %d): got %v want %v", tc.v, tc.places, got, tc.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  JANE   DOE ", "jane doe"},
		{"Jane Doe", "jane doe"},
		{"o'brien,\tpatrick", "o'brien, patrick"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Name(tc.in); got != tc.want {
			t.Errorf("Name(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("hash: got %s", got)
	}

	if _, err := FileHash(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
