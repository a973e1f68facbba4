package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/bank"
	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/logging"
)

// runApp resolves config, loads the bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	b, err := loadBank(cfg)
	if err != nil {
		logger.Error("bank load failed", "path", cfg.BankPath, "error", err)
		return err
	}
	logger.Info("bank loaded",
		"source", b.Source,
		"title", b.Title,
		"questions", len(b.Questions),
	)

	opts := app.Options{
		Bank:   b,
		Count:  cfg.Count,
		Rand:   newRand(cfg.Seed),
		Logger: logger,
	}
	if err := app.Run(opts); err != nil {
		logger.Error("program exited with error", "error", err)
		return err
	}
	return nil
}

// loadBank reads the configured bank, or the embedded one when no path
// is set.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		return bank.Default()
	}
	return bank.Load(cfg.BankPath)
}

// newRand returns a seeded source, or nil to use the global one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
