package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil/textutil"
)

func newRedactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redact <secret>...",
		Short: "Mask secrets the way they appear in logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), textutil.PasswordRedact(arg))
			}
			return nil
		},
	}
}
