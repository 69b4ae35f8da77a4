// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors POSCAR",
		Short: "Print the periodic neighbor list and coordination statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, idx, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, ns := range idx.Lists() {
				fmt.Fprintf(out, "%4d %-3s %v\n", i, s.Atoms[i].Element, ns)
			}
			fmt.Fprintln(out, "coordination:")
			for _, c := range idx.CoordinationStats() {
				fmt.Fprintf(out, "  %2d: %s\n", c.Coordination, plural(c.Atoms, "atom"))
			}

			return nil
		},
	}
}
