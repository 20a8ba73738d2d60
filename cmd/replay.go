package cmd

import (
	"fmt"

	"github.com/mj1618/outlook-a11y/internal/outlook"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a scenario against the scripted host",
	Long: `Replay a scenario's events and key presses through the adapter and
print what the host was asked to speak, braille and report at each step.
Steps with expectations are checked; any mismatch makes the command fail.

Examples:
  outlook-a11y replay -f calendar.yaml
  outlook-a11y replay -f calendar.yaml --format text`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringP("file", "f", "", "Scenario file (YAML or JSON)")
	_ = replayCmd.MarkFlagRequired("file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	sc, err := sim.Load(file)
	if err != nil {
		return err
	}
	report, err := outlook.Replay(sc, appConfig, logger.With(zap.String("scenario", sc.Name)))
	if err != nil {
		return err
	}
	if err := printResult(cmd, report); err != nil {
		return err
	}
	if !report.Passed {
		return fmt.Errorf("replay failed: %s", sc.Name)
	}
	return nil
}
