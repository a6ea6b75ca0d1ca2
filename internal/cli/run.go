package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shapes/internal/demo"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos in their fixed order",
		Long: "Run the named demos, or every demo when none are named and the demos\n" +
			"config key is empty. Demos always run in registry order.",
		ValidArgs: demo.Names(),
		RunE:      runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = cfg.GetStringSlice(cfgKeyDemos)
	}

	demos, err := demo.Select(names)
	if err != nil {
		return userError(err)
	}

	runner := demo.NewRunner(logger)
	out := cmd.OutOrStdout()

	if !cfg.GetBool(cfgKeyJSON) {
		return runner.Run(out, demos)
	}

	results, err := runner.Capture(demos)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			logger.Error("encode result", zap.String("demo", r.Demo), zap.Error(err))
			return err
		}
	}
	return nil
}
