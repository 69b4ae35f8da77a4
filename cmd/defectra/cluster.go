// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/defectra/cluster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) clusterCmd() *cobra.Command {
	var (
		output string
		xyz    bool
		flags  struct {
			shells             int
			smooth             bool
			ignoreElement      string
			ignoreCoordination int
			hydrogenate        bool
			terminator         string
			terminatorBond     bool
		}
	)
	cmd := &cobra.Command{
		Use:   "cluster POSCAR",
		Short: "Grow, smooth and terminate clusters around the defects",
		Long: `cluster seeds the marked set with the defects (every atom when none are found),
extends it by --shells neighbor shells, optionally removes dangling atoms until
stable, optionally caps every broken bond, and writes the cluster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := &a.cfg.Cluster
			f := cmd.Flags()
			if f.Changed("shells") {
				cc.Shells = flags.shells
			}
			if f.Changed("smooth") {
				cc.Smooth = flags.smooth
			}
			if f.Changed("ignore-element") {
				cc.IgnoreElement = flags.ignoreElement
			}
			if f.Changed("ignore-coordination") {
				cc.IgnoreCoordination = flags.ignoreCoordination
			}
			if f.Changed("hydrogenate") {
				cc.Hydrogenate = flags.hydrogenate
			}
			if f.Changed("terminator") {
				cc.Terminator = flags.terminator
			}
			if f.Changed("terminator-bond") {
				cc.UseTerminatorBond = flags.terminatorBond
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			run, err := a.findDefects(args[0])
			if err != nil {
				return err
			}
			e, err := cluster.New(run.s, cluster.WithIndex(run.idx), cluster.WithLogger(a.log))
			if err != nil {
				return err
			}
			m, err := e.Seed(run.result.All())
			if err != nil {
				return err
			}
			st, err := e.Extend(m, cc.Shells)
			if err != nil {
				return err
			}
			if cc.Smooth {
				opts := []cluster.SmoothOption{cluster.WithCutoff(cc.SmoothCutoff)}
				if cc.IgnoreElement != "" {
					opts = append(opts, cluster.WithIgnoredElement(cc.IgnoreElement, cc.IgnoreCoordination))
				}
				var passes int
				if st, passes, err = e.SmoothUntilStable(st.Marked, opts...); err != nil {
					return err
				}
				a.log.Debug("smoothing converged", zap.Int("passes", passes))
			}

			var terms []cluster.Termination
			if cc.Hydrogenate {
				terms, err = e.Hydrogenate(st.Marked, cluster.HydrogenateOptions{
					Element:           cc.Terminator,
					UseTerminatorBond: cc.UseTerminatorBond,
				})
				if err != nil {
					return err
				}
			}
			out, err := e.Materialize(st.Marked, terms)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s in %s, %s added, sizes %v\n",
				plural(st.Marked.Len(), "atom"),
				plural(len(st.Partition), "cluster"),
				plural(len(terms), "cap"),
				st.Partition.Sizes(),
			)
			a.log.Info("writing cluster", zap.String("path", output), zap.Int("atoms", out.Len()))

			return writeOut(output, out, xyz)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output POSCAR (required)")
	f.BoolVar(&xyz, "xyz", false, "also write OUTPUT.xyz")
	f.IntVar(&flags.shells, "shells", 1, "neighbor shells to add around the defects")
	f.BoolVar(&flags.smooth, "smooth", true, "remove dangling atoms until stable")
	f.StringVar(&flags.ignoreElement, "ignore-element", "", "element held to --ignore-coordination while smoothing")
	f.IntVar(&flags.ignoreCoordination, "ignore-coordination", 0, "smoothing cutoff for --ignore-element atoms")
	f.BoolVar(&flags.hydrogenate, "hydrogenate", false, "cap broken bonds instead of leaving them open")
	f.StringVar(&flags.terminator, "terminator", cluster.DefaultTerminator, "element used to cap broken bonds")
	f.BoolVar(&flags.terminatorBond, "terminator-bond", false, "size caps with the anchor-terminator bond length")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
