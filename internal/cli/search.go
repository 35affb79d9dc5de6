package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/config"
	"github.com/robocook/foon/internal/model"
	"github.com/robocook/foon/internal/search"
	"github.com/robocook/foon/internal/store"
)

// searchOutput is the JSON result document for one goal search.
type searchOutput struct {
	TargetObject string                `json:"target_object"`
	DesiredState string                `json:"desired_state"`
	Strategy     string                `json:"strategy"`
	Found        bool                  `json:"found"`
	Unit         *model.FunctionalUnit `json:"unit,omitempty"`
	Depth        int                   `json:"depth,omitempty"`
	Cost         float64               `json:"cost,omitempty"`
	ElapsedMS    float64               `json:"elapsed_ms"`
	Message      string                `json:"message,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "search [object] [state...]",
		Short: "Search for a unit producing a goal object in a goal state",
		Long: "Scan the FOON for a functional unit whose inputs are available in the kitchen\n" +
			"and whose outputs include the goal object in the goal state. Multi-word states\n" +
			"are joined from the remaining arguments.",
		Args: cobra.MinimumNArgs(2),
		Run:  runSearch,
	}

	cmd.Flags().StringP("strategy", "s", "", "Search strategy: ids or astar (default from config)")
	cmd.Flags().Int("max-depth", 0, "Depth limit for iterative deepening (default from config)")
	cmd.Flags().StringP("out", "o", "", "Write the JSON result to this file as well")
	cmd.Flags().String("tree", "", "Write the task-tree text dump to this file")
	cmd.Flags().Bool("no-record", false, "Skip recording the run in the history database")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	strategy, _ := cmd.Flags().GetString("strategy")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	outPath, _ := cmd.Flags().GetString("out")
	treePath, _ := cmd.Flags().GetString("tree")
	noRecord, _ := cmd.Flags().GetBool("no-record")

	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	if strategy == "" {
		strategy = cfg.Strategy
	}
	if maxDepth <= 0 {
		maxDepth = cfg.MaxDepth
	}

	n, err := loadNetwork(cfg)
	if err != nil {
		exitErr("load network", err)
	}

	// network lines are normalized to lowercase at parse time
	goal := model.Goal{
		Object: strings.ToLower(strings.TrimSpace(args[0])),
		State:  strings.ToLower(strings.Join(args[1:], " ")),
	}

	start := time.Now()
	res, err := n.Run(cmd.Context(), strategy, goal, maxDepth)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	out := searchOutput{
		TargetObject: goal.Object,
		DesiredState: goal.State,
		Strategy:     strategy,
		ElapsedMS:    elapsed,
	}
	switch {
	case err == nil:
		out.Found = true
		out.Unit = &res.Unit
		out.Depth = res.Depth
		out.Cost = res.Cost
	case errors.Is(err, search.ErrObjectUnknown), errors.Is(err, search.ErrNoMatch):
		out.Message = err.Error()
	default:
		exitErr("search", err)
	}

	if !noRecord {
		recordRun(cmd, cfg, out)
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))

	if outPath != "" {
		if err := os.WriteFile(outPath, append(b, '\n'), 0o644); err != nil {
			exitErr("write result", err)
		}
	}
	if treePath != "" {
		if err := writeTaskTree(treePath, out.Unit); err != nil {
			exitErr("write task tree", err)
		}
	}
}

// recordRun stores the run in the history database. A broken history
// DB should not fail the search itself, so errors only warn.
func recordRun(cmd *cobra.Command, cfg config.Config, out searchOutput) {
	s, err := openStore(cfg)
	if err != nil {
		slog.Warn("history database unavailable", "error", err)
		return
	}
	defer s.Close()

	_, err = s.Record(cmd.Context(), store.RecordParams{
		Strategy: out.Strategy,
		Object:   out.TargetObject,
		State:    out.DesiredState,
		Found:    out.Found,
		Unit:     out.Unit,
		Elapsed:  out.ElapsedMS,
	})
	if err != nil {
		slog.Warn("could not record run", "error", err)
	}
}

// writeTaskTree mirrors the plain-text dump format: a header line
// followed by the unit's normalized lines.
func writeTaskTree(path string, unit *model.FunctionalUnit) error {
	if unit == nil {
		return fmt.Errorf("no task tree available")
	}
	var sb strings.Builder
	sb.WriteString("Task Tree:\n")
	for _, line := range unit.Raw() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
