package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coinfmt/internal/dates"
)

func dateCmd() *cobra.Command {
	var (
		format       string
		unixSeconds  bool
		numericMonth bool
	)
	cmd := &cobra.Command{
		Use:   "date <value>",
		Short: "Format a date-like value in a fixed layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hints := dates.Hints{MonthNumeric: numericMonth}
			out, err := dates.FormatDate(dateInput(args[0]), hints, dates.Format(format), unixSeconds)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(dates.FormatISO),
		`output layout: "YYYY-MM-DD", "DD MMM YYYY" or "MMM DD YYYY"`)
	cmd.Flags().BoolVar(&unixSeconds, "unix", false, "treat a numeric value as seconds since epoch")
	cmd.Flags().BoolVar(&numericMonth, "numeric-month", false, "render the month as a number in name-bearing layouts")
	return cmd
}

// dateInput keeps numeric CLI arguments numeric so the timestamp rules apply.
func dateInput(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	return arg
}
