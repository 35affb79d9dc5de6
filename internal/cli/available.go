package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/model"
)

// availableOutput lists the units executable with the current kitchen.
type availableOutput struct {
	UsableUnits []model.FunctionalUnit `json:"usable_units"`
	Count       int                    `json:"count"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "available",
		Short: "List units executable with the current kitchen",
		Long:  "Report every functional unit whose input objects are all present in the kitchen inventory.",
		Run:   runAvailable,
	}

	cmd.Flags().StringP("out", "o", "", "Write the JSON report to this file as well")

	RootCmd.AddCommand(cmd)
}

func runAvailable(cmd *cobra.Command, args []string) {
	outPath, _ := cmd.Flags().GetString("out")

	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	n, err := loadNetwork(cfg)
	if err != nil {
		exitErr("load network", err)
	}

	usable := n.UsableUnits()
	out := availableOutput{UsableUnits: usable, Count: len(usable)}
	if out.UsableUnits == nil {
		out.UsableUnits = []model.FunctionalUnit{}
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))

	if outPath != "" {
		if err := os.WriteFile(outPath, append(b, '\n'), 0o644); err != nil {
			exitErr("write report", err)
		}
	}
}
