// Package model defines the core FOON data types.
package model

import (
	"strings"
	"time"
)

// LineKind tags a functional-unit line by its leading character.
type LineKind string

const (
	LineObject LineKind = "o"
	LineMotion LineKind = "m"
	LineState  LineKind = "s"
)

// Line is one normalized line of a functional unit: a kind tag, the
// name token that follows it, and the remaining tokens joined back
// together (state descriptions span several tokens).
type Line struct {
	Kind LineKind `json:"kind"`
	Name string   `json:"name"`
	Rest string   `json:"rest,omitempty"`
}

// Raw reconstructs the normalized source line.
func (l Line) Raw() string {
	parts := []string{string(l.Kind), l.Name}
	if l.Rest != "" {
		parts = append(parts, l.Rest)
	}
	return strings.Join(parts, " ")
}

// Value returns everything after the kind tag. For state lines this is
// the full state description.
func (l Line) Value() string {
	if l.Rest == "" {
		return l.Name
	}
	return l.Name + " " + l.Rest
}

// FunctionalUnit is one FOON entry: an ordered sequence of tagged lines
// describing input objects, a motion, and resulting objects/states.
type FunctionalUnit struct {
	Lines []Line `json:"lines"`
}

// Objects returns the names of all object lines, in order.
func (u FunctionalUnit) Objects() []string {
	var names []string
	for _, l := range u.Lines {
		if l.Kind == LineObject {
			names = append(names, l.Name)
		}
	}
	return names
}

// Motion returns the name of the first motion line, or "" if the unit
// has none.
func (u FunctionalUnit) Motion() string {
	for _, l := range u.Lines {
		if l.Kind == LineMotion {
			return l.Name
		}
	}
	return ""
}

// Raw returns the unit as normalized text lines.
func (u FunctionalUnit) Raw() []string {
	lines := make([]string, len(u.Lines))
	for i, l := range u.Lines {
		lines[i] = l.Raw()
	}
	return lines
}

// Goal names the object and state a search is after.
type Goal struct {
	Object string `json:"object"`
	State  string `json:"state"`
}

// AvailabilityStatus classifies a kitchen check result.
type AvailabilityStatus string

const (
	// AvailabilityFull means every object line resolved in the kitchen.
	AvailabilityFull AvailabilityStatus = "full"
	// AvailabilityMissing means at least one object was not found.
	AvailabilityMissing AvailabilityStatus = "missing"
	// AvailabilityNoObjects means the unit has no object lines at all.
	AvailabilityNoObjects AvailabilityStatus = "no_objects"
)

// Availability is the result of checking a unit against the kitchen
// inventory. Missing is populated only for AvailabilityMissing.
type Availability struct {
	Status  AvailabilityStatus `json:"status"`
	Missing []string           `json:"missing,omitempty"`
}

// OK reports whether the unit is fully executable with the current
// kitchen.
func (a Availability) OK() bool {
	return a.Status == AvailabilityFull
}

// ValidStrategies are the allowed search strategy names.
var ValidStrategies = map[string]bool{
	"ids":   true,
	"astar": true,
}

// Run records one executed goal search for the history database.
type Run struct {
	ID        string          `json:"id"`
	Strategy  string          `json:"strategy"`
	Object    string          `json:"object"`
	State     string          `json:"state"`
	Found     bool            `json:"found"`
	Unit      *FunctionalUnit `json:"unit,omitempty"`
	ElapsedMS float64         `json:"elapsed_ms"`
	CreatedAt time.Time       `json:"created_at"`
}
