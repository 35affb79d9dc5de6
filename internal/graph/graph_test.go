package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robocook/foon/internal/graph"
	"github.com/robocook/foon/internal/model"
)

func sliceUnit() model.FunctionalUnit {
	return model.FunctionalUnit{Lines: []model.Line{
		{Kind: model.LineObject, Name: "onion", Rest: "1"},
		{Kind: model.LineState, Name: "whole"},
		{Kind: model.LineMotion, Name: "slice"},
		{Kind: model.LineObject, Name: "onion", Rest: "1"},
		{Kind: model.LineState, Name: "ring", Rest: "shaped"},
	}}
}

func TestBuildChainsObjectsAndMotions(t *testing.T) {
	g := graph.FromUnit(sliceUnit())

	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, graph.Node{Name: "onion", Kind: graph.NodeObject}, nodes[0])
	assert.Equal(t, graph.Node{Name: "slice", Kind: graph.NodeMotion}, nodes[1])

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, graph.Edge{From: "onion", To: "slice"}, edges[0])
	assert.Equal(t, graph.Edge{From: "slice", To: "onion"}, edges[1])
}

func TestBuildSkipsStateLines(t *testing.T) {
	g := graph.FromUnit(sliceUnit())
	for _, n := range g.Nodes() {
		assert.NotEqual(t, "whole", n.Name)
		assert.NotEqual(t, "ring", n.Name)
	}
}

func TestBuildDeduplicatesAcrossUnits(t *testing.T) {
	units := []model.FunctionalUnit{sliceUnit(), sliceUnit()}
	g := graph.Build(units)

	assert.Len(t, g.Nodes(), 2)
	assert.Len(t, g.Edges(), 2)
}

func TestDOTOutput(t *testing.T) {
	out := graph.FromUnit(sliceUnit()).DOT("task tree")

	assert.True(t, strings.HasPrefix(out, "digraph task_tree {"))
	assert.Contains(t, out, `"onion" [label="onion", fillcolor="#74b9ff"];`)
	assert.Contains(t, out, `"slice" [label="slice", shape=ellipse, fillcolor="#ffd93d"];`)
	assert.Contains(t, out, `"onion" -> "slice";`)
	assert.Contains(t, out, `"slice" -> "onion";`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestMermaidOutput(t *testing.T) {
	out := graph.FromUnit(sliceUnit()).Mermaid()

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "onion[onion]")
	assert.Contains(t, out, "slice((slice))")
	assert.Contains(t, out, "onion --> slice")
}

func TestEmptyGraph(t *testing.T) {
	g := graph.Build(nil)
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.Contains(t, g.DOT(""), "digraph foon {")
}
