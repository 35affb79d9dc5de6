package search

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/robocook/foon/internal/model"
)

// node is a frontier entry in the best-first search: a goal pair plus
// the cost accumulated to reach it.
type node struct {
	cost   float64
	object string
	state  string
}

// nodeHeap is a min-heap of nodes ordered by cost.
type nodeHeap []node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// AStar runs a best-first search seeded with the goal itself. Each
// popped node's bucket is scanned in order; the first unit matching the
// node's goal and passing the kitchen check wins, with its cost set to
// the accumulated cost plus the inverse of the motion's success rate.
// A closed set guards against revisiting a goal pair. Returns
// ErrObjectUnknown for an unindexed goal object and ErrNoMatch when the
// frontier empties without a hit.
func (n *Network) AStar(ctx context.Context, goal model.Goal) (*Result, error) {
	if !n.HasObject(goal.Object) {
		return nil, fmt.Errorf("%w: %q", ErrObjectUnknown, goal.Object)
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, node{cost: 0, object: goal.Object, state: goal.State})
	closed := make(map[model.Goal]bool)

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := heap.Pop(open).(node)
		pair := model.Goal{Object: current.object, State: current.state}
		if closed[pair] {
			continue
		}
		closed[pair] = true

		bucket, ok := n.index[current.object]
		if !ok {
			continue
		}
		for _, i := range bucket {
			u := n.units[i]
			if !n.MatchesGoal(u, pair) {
				continue
			}
			if !n.Availability(u).OK() {
				continue
			}
			cost := current.cost + 1/n.SuccessRate(u.Motion())
			slog.Debug("matching unit found", "unit", i, "cost", cost)
			return &Result{Unit: u, Strategy: StrategyAStar, Cost: cost}, nil
		}
	}

	return nil, fmt.Errorf("%w: goal %s/%s", ErrNoMatch, goal.Object, goal.State)
}
