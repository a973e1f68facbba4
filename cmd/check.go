package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/bank"
)

var checkCmd = &cobra.Command{
	Use:   "check [bank]",
	Short: "Validate a question bank and print a summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.BankPath = args[0]
		}

		b, err := loadBank(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		byType := b.CountByType()
		title := b.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(out, "%s\n", title)
		fmt.Fprintf(out, "  source:    %s\n", b.Source)
		if b.Format != "" {
			fmt.Fprintf(out, "  format:    %s\n", b.Format)
		}
		fmt.Fprintf(out, "  questions: %d (%d single, %d multiple)\n",
			len(b.Questions), byType[bank.TypeSingle], byType[bank.TypeMultiple])
		fmt.Fprintf(out, "  session:   %d questions\n", min(cfg.Count, len(b.Questions)))
		return nil
	},
}
