package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unionfind/internal/problem"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported problem kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range problem.Kinds() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", k, problem.Describe(k)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
