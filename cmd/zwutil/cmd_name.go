package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil"
)

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <code|NAME>...",
		Short: "Translate between numeric codes and their names",
		Long: `Print the name of each numeric code (decimal or 0x hex), or the
numeric value of each code name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				info := lookupCode(arg)
				if !info.IsOk() {
					return info.Err()
				}
				c := info.Unwrap()
				line := fmt.Sprintf("%#x %s", int32(c.Code), codeStyle(c.Name, c.Code.IsOk()))
				if c.Description != "" {
					line += " " + dimStyle.Render(c.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// lookupCode resolves a numeric code or a registered name.
func lookupCode(arg string) zwutil.Result[zwutil.CodeInfo] {
	if n, err := strconv.ParseInt(arg, 0, 32); err == nil {
		c := zwutil.Code(n)
		if info, ok := zwutil.DefaultCodes.Lookup(c); ok {
			return zwutil.MakeValue(info)
		}
		return zwutil.MakeValue(zwutil.CodeInfo{Code: c, Name: c.String()})
	}

	for _, info := range zwutil.DefaultCodes.List() {
		if info.Name == arg {
			return zwutil.MakeValue(info)
		}
	}
	return zwutil.MakeErrorf[zwutil.CodeInfo](zwutil.CodeNotFound, "unknown code %q", arg)
}
