package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil"
)

func newCodesCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List known error codes",
		Long: `List every registered error code with its name and description.
Use --codes to add names from a YAML file and --yaml to print the
registry in the same format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				data, err := zwutil.DefaultCodes.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return renderCodes(cmd, zwutil.DefaultCodes.List())
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the registry as YAML")

	return cmd
}

func renderCodes(cmd *cobra.Command, codes []zwutil.CodeInfo) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Code", "Name", "Description")

	for _, info := range codes {
		if err := table.Append(
			fmt.Sprintf("%#x", int32(info.Code)),
			info.Name,
			info.Description,
		); err != nil {
			return err
		}
	}

	return table.Render()
}
