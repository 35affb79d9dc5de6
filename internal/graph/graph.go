// Package graph converts functional units into a directed graph of
// object and motion nodes and renders it as Graphviz DOT or Mermaid
// text. State lines carry no node of their own and are skipped.
package graph

import (
	"fmt"
	"strings"

	"github.com/robocook/foon/internal/model"
)

// NodeKind distinguishes object nodes from motion nodes for styling.
type NodeKind string

const (
	NodeObject NodeKind = "object"
	NodeMotion NodeKind = "motion"
)

// Node is a named vertex in the task graph.
type Node struct {
	Name string   `json:"name"`
	Kind NodeKind `json:"kind"`
}

// Edge is a directed link between two nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a deduplicated directed graph built from functional units.
// Node and edge order follows first appearance in the input.
type Graph struct {
	nodes    []Node
	nodeSeen map[string]bool
	edges    []Edge
	edgeSeen map[Edge]bool
}

// Build chains each unit's object and motion lines in order: every
// object or motion node gets an edge from the node that preceded it
// within the same unit.
func Build(units []model.FunctionalUnit) *Graph {
	g := &Graph{
		nodeSeen: make(map[string]bool),
		edgeSeen: make(map[Edge]bool),
	}
	for _, u := range units {
		previous := ""
		for _, l := range u.Lines {
			switch l.Kind {
			case model.LineObject:
				g.addNode(l.Name, NodeObject)
			case model.LineMotion:
				g.addNode(l.Name, NodeMotion)
			default:
				continue
			}
			if previous != "" && previous != l.Name {
				g.addEdge(previous, l.Name)
			}
			previous = l.Name
		}
	}
	return g
}

// FromUnit builds a graph from a single unit (a saved task tree).
func FromUnit(u model.FunctionalUnit) *Graph {
	return Build([]model.FunctionalUnit{u})
}

// Nodes returns the graph's nodes in first-appearance order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the graph's edges in first-appearance order.
func (g *Graph) Edges() []Edge { return g.edges }

func (g *Graph) addNode(name string, kind NodeKind) {
	if g.nodeSeen[name] {
		return
	}
	g.nodeSeen[name] = true
	g.nodes = append(g.nodes, Node{Name: name, Kind: kind})
}

func (g *Graph) addEdge(from, to string) {
	e := Edge{From: from, To: to}
	if g.edgeSeen[e] {
		return
	}
	g.edgeSeen[e] = true
	g.edges = append(g.edges, e)
}

// DOT renders the graph in Graphviz DOT format. Object nodes are light
// blue boxes, motion nodes yellow ellipses.
func (g *Graph) DOT(name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %s {\n", sanitizeDOTName(name)))
	sb.WriteString("    rankdir=TB;\n")
	sb.WriteString("    node [shape=box, style=filled];\n")
	sb.WriteString("\n")

	for _, n := range g.nodes {
		switch n.Kind {
		case NodeMotion:
			sb.WriteString(fmt.Sprintf("    %s [label=\"%s\", shape=ellipse, fillcolor=\"#ffd93d\"];\n",
				quoteDOTID(n.Name), escapeDOTLabel(n.Name)))
		default:
			sb.WriteString(fmt.Sprintf("    %s [label=\"%s\", fillcolor=\"#74b9ff\"];\n",
				quoteDOTID(n.Name), escapeDOTLabel(n.Name)))
		}
	}

	sb.WriteString("\n")
	for _, e := range g.edges {
		sb.WriteString(fmt.Sprintf("    %s -> %s;\n", quoteDOTID(e.From), quoteDOTID(e.To)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Mermaid renders the graph as a Mermaid flowchart.
func (g *Graph) Mermaid() string {
	var sb strings.Builder

	sb.WriteString("graph TD\n")
	for _, n := range g.nodes {
		id := sanitizeMermaidID(n.Name)
		if n.Kind == NodeMotion {
			sb.WriteString(fmt.Sprintf("    %s((%s))\n", id, escapeMermaidLabel(n.Name)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[%s]\n", id, escapeMermaidLabel(n.Name)))
		}
	}
	for _, e := range g.edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(e.To)))
	}
	return sb.String()
}

// Helper functions

func quoteDOTID(s string) string {
	return fmt.Sprintf("\"%s\"", strings.ReplaceAll(s, "\"", "\\\""))
}

func sanitizeDOTName(s string) string {
	replacer := strings.NewReplacer(" ", "_", "-", "_", ".", "_")
	name := replacer.Replace(s)
	if name == "" {
		name = "foon"
	}
	return name
}

func escapeDOTLabel(s string) string {
	replacer := strings.NewReplacer(
		"\"", "\\\"",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}

func sanitizeMermaidID(s string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		".", "_",
		"-", "_",
		" ", "_",
		"(", "",
		")", "",
	)
	result := replacer.Replace(s)
	if len(result) > 0 && (result[0] >= '0' && result[0] <= '9') {
		result = "n" + result
	}
	return result
}

func escapeMermaidLabel(s string) string {
	replacer := strings.NewReplacer(
		"\"", "#quot;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
