package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coinfmt/internal/dates"
)

func timeCmd() *cobra.Command {
	var unixSeconds bool
	cmd := &cobra.Command{
		Use:   "time <value>",
		Short: "Format the UTC wall-clock time of a date-like value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := dates.FormatTime(dateInput(args[0]), unixSeconds)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unixSeconds, "unix", false, "treat a numeric value as seconds since epoch")
	return cmd
}
