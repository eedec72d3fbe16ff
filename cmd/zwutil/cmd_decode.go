package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil"
	"github.com/zwutils/zwutil/textutil"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <text>...",
		Short: "Percent-decode URL query values",
		Long: `Decode %XX escapes in each argument. A '+' is kept as is.
Stops at the first argument with a malformed escape.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				r := textutil.URLDecode(arg)
				var decoded string
				if rc := zwutil.AssignOrReturn(&decoded, r); rc != zwutil.OK {
					fmt.Fprintf(out, "%s %s\n", errorStyle.Render(iconError), arg)
					return r.Err()
				}
				logger.Debug("decoded", "input", arg, "bytes", len(decoded))
				fmt.Fprintf(out, "%s %q\n", okStyle.Render(iconOK), decoded)
			}
			return nil
		},
	}
}
