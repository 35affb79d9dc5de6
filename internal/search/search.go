package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robocook/foon/internal/model"
)

// Sentinel errors for goal searches.
var (
	// ErrObjectUnknown is returned when the goal object appears in no unit.
	ErrObjectUnknown = errors.New("search: goal object not in network")

	// ErrNoMatch is returned when the goal object is known but no unit
	// both matches the goal state and is available in the kitchen.
	ErrNoMatch = errors.New("search: no matching unit")

	// ErrStrategyUnknown is returned for an unrecognized strategy name.
	ErrStrategyUnknown = errors.New("search: unknown strategy")
)

// Strategy names accepted by Run.
const (
	StrategyIDS   = "ids"
	StrategyAStar = "astar"
)

// DefaultMaxDepth bounds iterative deepening when the caller does not.
const DefaultMaxDepth = 40

// Result is the outcome of a successful goal search: the winning unit
// plus strategy-specific bookkeeping. Depth is the iterative-deepening
// depth at which the unit was found; Cost is the accumulated motion
// cost for the best-first strategy.
type Result struct {
	Unit     model.FunctionalUnit `json:"unit"`
	Strategy string               `json:"strategy"`
	Depth    int                  `json:"depth,omitempty"`
	Cost     float64              `json:"cost,omitempty"`
}

// Run dispatches to the named strategy.
func (n *Network) Run(ctx context.Context, strategy string, goal model.Goal, maxDepth int) (*Result, error) {
	switch strategy {
	case StrategyIDS:
		return n.IterativeDeepening(ctx, goal, maxDepth)
	case StrategyAStar:
		return n.AStar(ctx, goal)
	default:
		return nil, fmt.Errorf("%w: %q", ErrStrategyUnknown, strategy)
	}
}

// IterativeDeepening runs depth-limited scans with an increasing depth
// bound until a unit is found or maxDepth is exhausted. Depth 0 never
// scans, so the first productive iteration is depth 1. Returns
// ErrObjectUnknown if the goal object is not indexed, ErrNoMatch if
// every depth comes up empty, or the context error on cancellation.
func (n *Network) IterativeDeepening(ctx context.Context, goal model.Goal, maxDepth int) (*Result, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if !n.HasObject(goal.Object) {
		return nil, fmt.Errorf("%w: %q", ErrObjectUnknown, goal.Object)
	}

	for depth := 0; depth < maxDepth; depth++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		slog.Debug("searching with depth limit", "depth", depth)
		res, err := n.depthLimited(goal, depth)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	return nil, fmt.Errorf("%w: goal %s/%s not reached within depth limit %d",
		ErrNoMatch, goal.Object, goal.State, maxDepth)
}

// depthLimited scans the goal object's index bucket once, returning the
// first unit that matches the goal and passes the kitchen check.
func (n *Network) depthLimited(goal model.Goal, depth int) (*Result, error) {
	if depth == 0 {
		return nil, ErrNoMatch
	}
	bucket, ok := n.index[goal.Object]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrObjectUnknown, goal.Object)
	}

	for _, i := range bucket {
		u := n.units[i]
		if !n.MatchesGoal(u, goal) {
			slog.Debug("unit does not match goal state", "unit", i, "goal", goal.State)
			continue
		}
		avail := n.Availability(u)
		if !avail.OK() {
			slog.Debug("unit not executable", "unit", i, "missing", avail.Missing)
			continue
		}
		slog.Debug("matching unit found", "unit", i, "depth", depth)
		return &Result{Unit: u, Strategy: StrategyIDS, Depth: depth}, nil
	}

	return nil, ErrNoMatch
}
