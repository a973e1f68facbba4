package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer",
	Short: "Terminal multiple-choice quiz",
	Long:  "Quizzer draws a random set of questions from a question bank and grades your answers in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("bank", "", "Question bank file, .json, .json5, .yaml or .yml (overrides QUIZZER_BANK)")
	flags.Int("count", 0, "Questions per session (overrides QUIZZER_COUNT, default 15)")
	flags.Uint64("seed", 0, "Seed for question sampling, 0 for random (overrides QUIZZER_SEED)")
	flags.String("log", "", "Write JSON logs to this file (overrides QUIZZER_LOG)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the effective config: flags set on the command
// line win over the environment, which wins over the config file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
