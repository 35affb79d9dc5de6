package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robocook/foon/internal/model"
)

// unitEntry is one unit plus its kitchen-availability status.
type unitEntry struct {
	Unit         model.FunctionalUnit `json:"unit"`
	Motion       string               `json:"motion,omitempty"`
	Availability model.Availability   `json:"availability"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List parsed functional units",
		Long:  "List every parsed unit with its motion and kitchen availability. Filter to units referencing one object with --object.",
		Run:   runUnits,
	}

	cmd.Flags().String("object", "", "Only units referencing this object")
	cmd.Flags().IntP("limit", "l", 0, "Max units to print (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runUnits(cmd *cobra.Command, args []string) {
	object, _ := cmd.Flags().GetString("object")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := settings()
	if err != nil {
		exitErr("load config", err)
	}
	n, err := loadNetwork(cfg)
	if err != nil {
		exitErr("load network", err)
	}

	entries := []unitEntry{}
	for _, u := range n.Units() {
		if object != "" && !referencesObject(u, object) {
			continue
		}
		entries = append(entries, unitEntry{
			Unit:         u,
			Motion:       u.Motion(),
			Availability: n.Availability(u),
		})
		if limit > 0 && len(entries) >= limit {
			break
		}
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}

func referencesObject(u model.FunctionalUnit, object string) bool {
	for _, name := range u.Objects() {
		if name == object {
			return true
		}
	}
	return false
}
