package cli

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shapes/internal/demo"
)

// dumper renders demo subjects. Pointer addresses are hidden so dumps are
// stable across runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// inspectEntry is the JSON form of an inspected subject.
type inspectEntry struct {
	Demo  string `json:"demo"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "inspect <demo>",
		Short:     "Dump the value a demo constructs",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE:      runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	d, err := demo.Lookup(args[0])
	if err != nil {
		return userError(err)
	}
	subject := d.Subject()
	out := cmd.OutOrStdout()

	if cfg.GetBool(cfgKeyJSON) {
		return json.NewEncoder(out).Encode(inspectEntry{
			Demo:  d.Name,
			Type:  fmt.Sprintf("%T", subject),
			Value: subject,
		})
	}

	dumper.Fdump(out, subject)
	return nil
}
