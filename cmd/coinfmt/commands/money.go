package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coinfmt/internal/money"
)

func moneyCmd() *cobra.Command {
	var (
		currency string
		locale   string
		decimals int
	)
	cmd := &cobra.Command{
		Use:   "money <amount>",
		Short: "Format a monetary amount with locale-aware separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			opts := money.Options{Currency: currency, Locale: locale}
			if opts.Currency == "" {
				opts.Currency = cfg.Currency
			}
			if opts.Locale == "" {
				opts.Locale = cfg.Locale
			}
			if cmd.Flags().Changed("decimals") {
				opts.DecimalPlaces = &decimals
			}

			fmt.Println(formatter.Format(amount, opts))
			return nil
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default from config)")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP-47 locale tag (default from config)")
	cmd.Flags().IntVar(&decimals, "decimals", 0, "explicit decimal places, overrides the currency precision")
	return cmd
}
