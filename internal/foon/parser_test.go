package foon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robocook/foon/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"O\tOnion   1", "o onion 1"},
		{"S sliced, thin", "s sliced thin"},
		{`\`, ""},
		{"   ", ""},
		{"//", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestParseGroupsUnitsOnBlankLines(t *testing.T) {
	input := strings.Join([]string{
		"o onion 1",
		"s whole",
		"m slice",
		"o onion 1",
		"s sliced",
		"",
		"o egg 1",
		"m crack",
		"o egg 1",
		"s cracked",
	}, "\n")

	units, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("got %d units; want 2", len(units))
	}
	if len(units[0].Lines) != 5 {
		t.Errorf("unit 0 has %d lines; want 5", len(units[0].Lines))
	}
	if got := units[0].Motion(); got != "slice" {
		t.Errorf("unit 0 motion = %q; want %q", got, "slice")
	}
	if got := units[1].Objects(); len(got) != 2 || got[0] != "egg" {
		t.Errorf("unit 1 objects = %v; want [egg egg]", got)
	}
}

func TestParseBackslashDelimiter(t *testing.T) {
	input := "o bread 1\nm toast\no bread 1\ns toasted\n\\\no butter 1\nm spread\n"

	units, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("got %d units; want 2", len(units))
	}
}

func TestParseSkipsUntaggedLines(t *testing.T) {
	input := "this is a header\no tomato 1\nm dice\no tomato 1\ns diced small\n"

	units, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("got %d units; want 1", len(units))
	}
	if len(units[0].Lines) != 4 {
		t.Errorf("got %d lines; want 4 (header skipped)", len(units[0].Lines))
	}
	if got := units[0].Lines[3]; got.Kind != model.LineState || got.Value() != "diced small" {
		t.Errorf("state line = %+v; want state %q", got, "diced small")
	}
}

func TestParseEmptyInput(t *testing.T) {
	units, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(units) != 0 {
		t.Errorf("got %d units; want 0", len(units))
	}
}

func TestLoadKitchen(t *testing.T) {
	path := writeTempFile(t, "kitchen.txt", "Onion\negg\n\n  Pan \n")

	kitchen, err := LoadKitchen(path)
	if err != nil {
		t.Fatalf("load kitchen: %v", err)
	}
	for _, want := range []string{"onion", "egg", "pan"} {
		if !kitchen[want] {
			t.Errorf("kitchen missing %q", want)
		}
	}
	if len(kitchen) != 3 {
		t.Errorf("kitchen has %d entries; want 3", len(kitchen))
	}
}

func TestLoadMotionsSkipsBadRates(t *testing.T) {
	path := writeTempFile(t, "motion.txt", "slice 0.9\ncrack not-a-number\npour 0.75\nlonely\n")

	motions, err := LoadMotions(path)
	if err != nil {
		t.Fatalf("load motions: %v", err)
	}
	if len(motions) != 2 {
		t.Fatalf("got %d motions; want 2", len(motions))
	}
	if motions["slice"] != 0.9 {
		t.Errorf("slice rate = %v; want 0.9", motions["slice"])
	}
	if _, ok := motions["crack"]; ok {
		t.Error("crack should have been skipped")
	}
}

func TestLoadersMissingFile(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ParseFile: want error for missing file")
	}
	if _, err := LoadKitchen(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadKitchen: want error for missing file")
	}
	if _, err := LoadMotions(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadMotions: want error for missing file")
	}
}
