package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil/databuf"
)

func newPrintCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "print <format> [arg]...",
		Short: "Format text into a stash buffer",
		Long: `Format each argument with the given format into its own stash buffer,
the way response headers are built before they are sent. Without
arguments the format is printed once as is.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stash := databuf.NewStash(nil)
			defer stash.Close()

			format, values := args[0], args[1:]
			if len(values) == 0 {
				stash.Printf("%s", format)
			}
			for _, v := range values {
				stash.Printf(format, v)
			}

			out := cmd.OutOrStdout()
			for _, b := range stash.Buffers() {
				fmt.Fprintln(out, b.String())
			}

			stats := stash.Stats()
			logger.Debug("stash filled", "buffers", stats.Buffers, "bytes", stats.BytesHeld)
			if showStats {
				fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf(
					"buffers=%d bytes=%d digest=%016x",
					stats.Buffers, stats.BytesHeld, stash.Digest(),
				)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showStats, "stats", "s", false, "Print stash statistics")

	return cmd
}
