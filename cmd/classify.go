package cmd

import (
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/outlook"
	"github.com/mj1618/outlook-a11y/internal/output"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show the overlays and corrections of every node in a scenario tree",
	Long: `Classify every node of a scenario's accessibility tree as the adapter
would: which overlays it receives, most specific first, and which structural
corrections are applied to it.

The client version comes from the scenario's object model unless --client-version
is given.

Examples:
  outlook-a11y classify -f inbox.yaml
  outlook-a11y classify -f inbox.yaml --client-version 9 --format text
  outlook-a11y classify -f inbox.yaml --roles listitem,dataitem --text alice`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringP("file", "f", "", "Scenario file (YAML or JSON)")
	classifyCmd.Flags().Int("client-version", 0, "Client major version to classify against")
	classifyCmd.Flags().StringSlice("roles", nil, "Only show nodes with these fixture roles (comma-separated)")
	classifyCmd.Flags().String("text", "", "Only show nodes whose name, value or description contains this text")
	_ = classifyCmd.MarkFlagRequired("file")
}

func runClassify(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	v, _ := cmd.Flags().GetInt("client-version")
	roles, _ := cmd.Flags().GetStringSlice("roles")
	text, _ := cmd.Flags().GetString("text")

	sc, err := sim.Load(file)
	if err != nil {
		return err
	}
	if v == 0 {
		v = outlook.ScenarioVersion(sc)
	}
	return printResult(cmd, output.ClassifyResult{
		File:     file,
		Version:  v,
		Elements: outlook.ClassifyScenario(sc, appConfig, v, model.Filter{Roles: roles, Text: text}),
	})
}
