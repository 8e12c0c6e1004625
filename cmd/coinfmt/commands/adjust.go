package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coinfmt/internal/dates"
)

func adjustCmd() *cobra.Command {
	var (
		unit      string
		direction string
	)
	cmd := &cobra.Command{
		Use:   "adjust <amount>",
		Short: "Shift the current date by days or years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			shifted := dates.Adjust(amount, dates.Unit(unit), dates.Direction(direction))
			out, err := dates.FormatDate(shifted, dates.Hints{}, dates.FormatISO, false)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&unit, "unit", string(dates.UnitDays), `"days" or "years"`)
	cmd.Flags().StringVar(&direction, "direction", string(dates.DirectionAdd), `"add" or "subtract"`)
	return cmd
}
