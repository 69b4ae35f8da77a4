// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/defectra/defect"
	"github.com/katalvlaran/defectra/poscar"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) defectsCmd() *cobra.Command {
	var (
		method      string
		placeholder string
		output      string
	)
	cmd := &cobra.Command{
		Use:   "defects POSCAR",
		Short: "Flag atoms of rare species or rare local environments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("method") {
				a.cfg.Defect.Method = method
			}
			if cmd.Flags().Changed("placeholder") {
				a.cfg.Defect.Placeholder = placeholder
			}
			res, err := a.findDefects(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range res.result.Ran() {
				ids, _ := res.result.Get(m)
				fmt.Fprintf(out, "%s: %v\n", m, ids)
			}
			for _, w := range res.result.Warnings() {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			if output == "" {
				return nil
			}
			label := a.cfg.Defect.Placeholder
			if label == "" {
				return fmt.Errorf("defects: -o needs --placeholder to mark defect atoms")
			}
			marked, err := res.s.Relabel(res.result.All(), label)
			if err != nil {
				return err
			}
			a.log.Info("writing relabeled structure", zap.String("path", output), zap.String("placeholder", label))

			return poscar.WriteFile(output, marked)
		},
	}
	cmd.Flags().StringVar(&method, "method", string(defect.MethodAny), "species-abundance, local-environment or any")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "element label written in place of defect atoms")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the relabeled structure to this POSCAR")

	return cmd
}
