package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coinfmt/internal/longcode"
)

func longcodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "longcode <longcode>",
		Short: "Extract hashes from a transaction longcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details := longcode.Parse(args[0])

			fmt.Printf("Address hash:    %s\n", orNone(details.AddressHash))
			fmt.Printf("Blockchain hash: %s\n", orNone(details.BlockchainHash))
			for i, segment := range details.SplitLongcode {
				fmt.Printf("Segment %d:       %s\n", i, segment)
			}
			return nil
		},
	}
	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
