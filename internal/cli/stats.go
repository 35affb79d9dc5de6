package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/store"
)

// statsOutput combines network and history statistics.
type statsOutput struct {
	Units   int          `json:"units"`
	Objects int          `json:"objects"`
	Usable  int          `json:"usable_units"`
	History *store.Stats `json:"history,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show network and history statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	n, err := loadNetwork(cfg)
	if err != nil {
		exitErr("load network", err)
	}

	out := statsOutput{
		Units:   len(n.Units()),
		Objects: len(n.Objects()),
		Usable:  len(n.UsableUnits()),
	}

	if s, err := openStore(cfg); err == nil {
		defer s.Close()
		if history, err := s.Stats(cmd.Context(), cfg.DBPath); err == nil {
			out.History = history
		}
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
