// Package foon parses FOON network files and the kitchen/motion
// companion files.
//
// A FOON file is flat text: one functional unit per block, blocks
// separated by blank lines or a line holding only a backslash. Each
// line starts with a kind tag (o = object, m = motion, s = state)
// followed by a name and optional extra tokens.
package foon

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/robocook/foon/internal/model"
)

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips punctuation, lowercases, and collapses runs of
// whitespace. A delimiter line of "\" normalizes to the empty string,
// which is what makes it equivalent to a blank line.
func Normalize(line string) string {
	line = punctRe.ReplaceAllString(line, "")
	line = spaceRe.ReplaceAllString(line, " ")
	return strings.ToLower(strings.TrimSpace(line))
}

// Parse reads functional units from r. Lines that normalize to empty
// close the current unit. Lines whose first token is not a known kind
// tag are skipped with a debug log; nothing about the input is treated
// as fatal except a read error.
func Parse(r io.Reader) ([]model.FunctionalUnit, error) {
	var units []model.FunctionalUnit
	var current []model.Line

	flush := func() {
		if len(current) > 0 {
			units = append(units, model.FunctionalUnit{Lines: current})
			current = nil
		}
	}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		norm := Normalize(sc.Text())
		if norm == "" {
			flush()
			continue
		}
		line, ok := parseLine(norm)
		if !ok {
			slog.Debug("skipping untagged line", "line", lineNum, "text", norm)
			continue
		}
		current = append(current, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read foon: %w", err)
	}
	flush()

	return units, nil
}

// ParseFile parses the FOON file at path.
func ParseFile(path string) ([]model.FunctionalUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open foon file: %w", err)
	}
	defer f.Close()

	units, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return units, nil
}

// parseLine splits a normalized line into a tagged Line. The first
// token must be exactly one of the kind tags.
func parseLine(norm string) (model.Line, bool) {
	tokens := strings.Split(norm, " ")
	if len(tokens) < 2 {
		return model.Line{}, false
	}
	var kind model.LineKind
	switch tokens[0] {
	case "o":
		kind = model.LineObject
	case "m":
		kind = model.LineMotion
	case "s":
		kind = model.LineState
	default:
		return model.Line{}, false
	}
	return model.Line{
		Kind: kind,
		Name: tokens[1],
		Rest: strings.Join(tokens[2:], " "),
	}, true
}

// LoadKitchen reads the kitchen inventory: one ingredient or tool name
// per line, lowercased into a set. Blank lines are ignored.
func LoadKitchen(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kitchen file: %w", err)
	}
	defer f.Close()

	kitchen := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.ToLower(strings.TrimSpace(sc.Text()))
		if name != "" {
			kitchen[name] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read kitchen: %w", err)
	}
	return kitchen, nil
}

// LoadMotions reads the motion success-rate table: "name rate" per
// line. Lines whose rate fails to parse as a float are skipped with a
// debug log naming the line.
func LoadMotions(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open motion file: %w", err)
	}
	defer f.Close()

	motions := make(map[string]float64)
	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		parts := strings.Fields(sc.Text())
		if len(parts) < 2 {
			continue
		}
		rate, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			slog.Debug("skipping motion with unparsable rate",
				"line", lineNum, "motion", parts[0], "rate", parts[1])
			continue
		}
		motions[parts[0]] = rate
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read motions: %w", err)
	}
	return motions, nil
}
