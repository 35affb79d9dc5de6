package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/graph"
	"github.com/robocook/foon/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Render the network or a task tree as a graph",
		Long: "Emit a directed graph of object and motion nodes in Graphviz DOT (default) or\n" +
			"Mermaid format. Without flags the whole network is rendered; with --object and\n" +
			"--state only the winning unit for that goal is.",
		Run: runViz,
	}

	cmd.Flags().String("format", "dot", "Output format: dot or mermaid")
	cmd.Flags().String("object", "", "Goal object (render only its winning unit)")
	cmd.Flags().String("state", "", "Goal state (requires --object)")
	cmd.Flags().StringP("strategy", "s", "", "Search strategy for the goal lookup")
	cmd.Flags().StringP("out", "o", "", "Write the graph to this file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runViz(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("format")
	object, _ := cmd.Flags().GetString("object")
	state, _ := cmd.Flags().GetString("state")
	strategy, _ := cmd.Flags().GetString("strategy")
	outPath, _ := cmd.Flags().GetString("out")

	if format != "dot" && format != "mermaid" {
		exitErr("viz", fmt.Errorf("unknown format %q", format))
	}
	if (object == "") != (state == "") {
		exitErr("viz", fmt.Errorf("--object and --state go together"))
	}

	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	if strategy == "" {
		strategy = cfg.Strategy
	}
	n, err := loadNetwork(cfg)
	if err != nil {
		exitErr("load network", err)
	}

	var g *graph.Graph
	name := "foon"
	if object != "" {
		goal := model.Goal{
			Object: strings.ToLower(strings.TrimSpace(object)),
			State:  strings.ToLower(strings.Join(strings.Fields(state), " ")),
		}
		res, err := n.Run(cmd.Context(), strategy, goal, cfg.MaxDepth)
		if err != nil {
			exitErr("goal lookup", err)
		}
		g = graph.FromUnit(res.Unit)
		name = "task_tree"
	} else {
		g = graph.Build(n.Units())
	}

	var rendered string
	if format == "mermaid" {
		rendered = g.Mermaid()
	} else {
		rendered = g.DOT(name)
	}

	if outPath == "" {
		fmt.Print(rendered)
		return
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		exitErr("write graph", err)
	}
}
