package commands

import (
	"github.com/spf13/cobra"

	"coinfmt/internal/config"
	"coinfmt/internal/money"
)

var (
	envFile string

	cfg       *config.Config
	formatter *money.Formatter
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "coinfmt",
		Short: "Formatting helpers for cashier transaction display",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFile)
			if err != nil {
				return err
			}

			registry := money.NewRegistry()
			if err := loaded.Apply(registry); err != nil {
				return err
			}

			cfg = loaded
			formatter = money.NewFormatter(registry)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", ".env", "path to env file")

	root.AddCommand(moneyCmd(), dateCmd(), timeCmd(), adjustCmd(), longcodeCmd())
	return root.Execute()
}
