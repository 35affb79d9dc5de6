// Package search indexes a parsed FOON network and finds functional
// units that produce a goal object in a goal state, honoring the
// kitchen inventory. Two strategies are provided: iterative-deepening
// search and a best-first search driven by motion success rates.
package search

import (
	"sort"
	"strings"

	"github.com/robocook/foon/internal/model"
)

// Network holds the parsed functional units, the object index, and the
// kitchen/motion tables. It is built once and never mutated afterwards,
// so it is safe to share.
type Network struct {
	units   []model.FunctionalUnit
	index   map[string][]int // object name -> indices into units
	kitchen map[string]bool
	motions map[string]float64
}

// NewNetwork builds a Network from parsed units plus the kitchen set
// and motion success-rate table. The object index is populated here:
// each unit is listed under every object name appearing in it.
func NewNetwork(units []model.FunctionalUnit, kitchen map[string]bool, motions map[string]float64) *Network {
	n := &Network{
		units:   units,
		index:   make(map[string][]int),
		kitchen: kitchen,
		motions: motions,
	}
	for i, u := range units {
		seen := make(map[string]bool)
		for _, l := range u.Lines {
			if l.Kind != model.LineObject || seen[l.Name] {
				continue
			}
			seen[l.Name] = true
			n.index[l.Name] = append(n.index[l.Name], i)
		}
	}
	return n
}

// Units returns all functional units in file order.
func (n *Network) Units() []model.FunctionalUnit {
	return n.units
}

// Objects returns the indexed object names, sorted.
func (n *Network) Objects() []string {
	names := make([]string, 0, len(n.index))
	for name := range n.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasObject reports whether any unit references the object.
func (n *Network) HasObject(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Availability checks a unit's object lines against the kitchen.
// A unit with no object lines at all is its own status; otherwise the
// unit is fully available iff every object name resolves, and the
// missing names are reported exactly.
func (n *Network) Availability(u model.FunctionalUnit) model.Availability {
	objects := u.Objects()
	if len(objects) == 0 {
		return model.Availability{Status: model.AvailabilityNoObjects}
	}
	var missing []string
	for _, name := range objects {
		if !n.kitchen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return model.Availability{Status: model.AvailabilityMissing, Missing: missing}
	}
	return model.Availability{Status: model.AvailabilityFull}
}

// MatchesGoal reports whether the unit satisfies the goal: some object
// line's name equals the goal object, and some state line contains the
// goal state as a substring. The two matches need not be on adjacent
// lines; any object match plus any state match within the unit counts.
func (n *Network) MatchesGoal(u model.FunctionalUnit, goal model.Goal) bool {
	objectMatch := false
	stateMatch := false
	for _, l := range u.Lines {
		switch l.Kind {
		case model.LineObject:
			if l.Name == goal.Object {
				objectMatch = true
			}
		case model.LineState:
			if strings.Contains(l.Value(), goal.State) {
				stateMatch = true
			}
		}
	}
	return objectMatch && stateMatch
}

// UsableUnits returns every unit that is fully executable with the
// current kitchen inventory.
func (n *Network) UsableUnits() []model.FunctionalUnit {
	var usable []model.FunctionalUnit
	for _, u := range n.units {
		if n.Availability(u).OK() {
			usable = append(usable, u)
		}
	}
	return usable
}

// SuccessRate returns the success rate for a motion, defaulting to 1
// for motions absent from the table.
func (n *Network) SuccessRate(motion string) float64 {
	if rate, ok := n.motions[motion]; ok && rate > 0 {
		return rate
	}
	return 1
}
