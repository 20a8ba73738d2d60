package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/logging"
	"github.com/mj1618/outlook-a11y/internal/output"
	_ "github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/mj1618/outlook-a11y/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "outlook-a11y",
	Short: "Screen reader support for the Outlook desktop client",
	Long: `Screen reader support for the Outlook desktop client: overlay
classification, focus arbitration and speech for message lists, calendars,
date pickers and mail bodies. The commands run the adapter against recorded
scenarios through a scripted host.`,
	SilenceUsage: true,
}

// appConfig and logger are set by the root command before any subcommand runs.
var (
	appConfig = config.Default()
	logger    = zap.NewNop()
)

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/outlook-a11y/outlook-a11y.toml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Override log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(viper.New(), path)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}
		log, err := logging.New(logging.FromConfig(cfg.Log))
		if err != nil {
			return err
		}
		appConfig = cfg
		logger = log
		logger.Debug("configuration loaded", zap.String("source", cfg.Source), zap.String("locale", cfg.Locale))

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// printResult writes v to the command's output in the selected format.
func printResult(cmd *cobra.Command, v interface{}) error {
	return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, v)
}
