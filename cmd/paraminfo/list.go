package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var signatures bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				if !signatures {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					continue
				}
				sig, err := a.registry.Describe(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sig.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&signatures, "signatures", "s", false, "print full signatures")
	return cmd
}
