package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rag-intent-chat/config"
	"rag-intent-chat/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "chatctl - operator tool for rag-intent-chat",
	Long: `chatctl runs one-off operations against the same configuration as the API:
exporting the schema documents handed to the model and asking a single question
through the full pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are printed once to stderr.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newAskCmd())
}

// loadConfig reads config.yaml and builds a logger on stderr so stdout stays
// machine readable.
func loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
	})
	return cfg, l, nil
}
