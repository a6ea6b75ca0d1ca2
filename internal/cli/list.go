package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shapes/internal/demo"
)

// listEntry is the JSON form of one listed demo.
type listEntry struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List demos in run order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	demos := demo.All()

	if cfg.GetBool(cfgKeyJSON) {
		entries := make([]listEntry, len(demos))
		for i, d := range demos {
			entries[i] = listEntry{Name: d.Name, Summary: d.Summary}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range demos {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Summary)
	}
	return tw.Flush()
}
