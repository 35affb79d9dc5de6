package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded search runs",
		Long:  "List past goal searches from the history database, newest first.",
		Run:   runRuns,
	}

	cmd.Flags().StringP("strategy", "s", "", "Filter by strategy")
	cmd.Flags().String("object", "", "Filter by goal object")
	cmd.Flags().IntP("limit", "l", 20, "Max runs")

	RootCmd.AddCommand(cmd)
}

func runRuns(cmd *cobra.Command, args []string) {
	strategy, _ := cmd.Flags().GetString("strategy")
	object, _ := cmd.Flags().GetString("object")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	s, err := openStore(cfg)
	if err != nil {
		exitErr("open history", err)
	}
	defer s.Close()

	runs, err := s.List(cmd.Context(), store.ListParams{
		Strategy: strategy,
		Object:   object,
		Limit:    limit,
	})
	if err != nil {
		exitErr("list runs", err)
	}

	if len(runs) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(runs, "", "  ")
	fmt.Println(string(b))
}
