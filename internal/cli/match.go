package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shapes/internal/demo"
	"github.com/mesh-intelligence/shapes/pkg/types"
)

// matchEntry is the JSON form of a matched message.
type matchEntry struct {
	Variant string `json:"variant"`
	Line    string `json:"line"`
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <variant> [args...]",
		Short: "Build a message variant and print the line its match arm produces",
		Long: "Variants: " + strings.Join(types.Variants, ", ") + ".\n" +
			"Use -- before negative numbers so they are not read as flags.",
		Example: "  shapes match quit\n" +
			"  shapes match move -- 3 -4\n" +
			"  shapes match write hello world\n" +
			"  shapes match change-color 222 222 201",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: types.Variants,
		RunE:      runMatch,
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	variant := args[0]
	msg, err := types.ParseMessage(variant, args[1:])
	if err != nil {
		return userError(err)
	}
	logger.Debug("parsed message", zap.String("variant", variant), zap.String("type", fmt.Sprintf("%T", msg)))

	line, err := demo.MatchLine(msg)
	if err != nil {
		return userError(err)
	}

	out := cmd.OutOrStdout()
	if cfg.GetBool(cfgKeyJSON) {
		return json.NewEncoder(out).Encode(matchEntry{Variant: variant, Line: line})
	}
	_, err = fmt.Fprintln(out, line)
	return err
}
