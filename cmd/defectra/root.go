// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/defectra/config"
	"github.com/katalvlaran/defectra/internal/logging"
	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/poscar"
	"github.com/katalvlaran/defectra/structure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "defectra",
		Short: "Defect detection and cluster extraction for periodic structures",
		Long: `defectra builds the periodic nearest-neighbor graph of a POSCAR structure,
flags atoms of rare species or rare local environments, and grows, smooths and
hydrogen-terminates clusters around them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.neighborsCmd(), a.defectsCmd(), a.clusterCmd())

	return root
}

// setup loads configuration and builds the run logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With(zap.String("run_id", uuid.NewString()))

	return nil
}

// load reads a structure and builds its neighbor index, warning when the
// cell is too small for the minimum-image convention to hold.
func (a *app) load(path string) (*structure.Structure, *neighbor.Index, error) {
	s, err := poscar.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	opts := append(a.cfg.NeighborOptions(), neighbor.WithLogger(a.log))
	idx, err := neighbor.Build(s, opts...)
	if err != nil {
		return nil, nil, err
	}
	w := s.Lattice.Widths()
	if narrow := min(w[0], w[1], w[2]); narrow < 2*idx.MaxCutoff() {
		a.log.Warn("cell narrower than twice the bond cutoff; periodic neighbors may be wrong",
			zap.Float64("width", narrow),
			zap.Float64("cutoff", idx.MaxCutoff()),
		)
	}
	a.log.Info("structure loaded",
		zap.String("path", path),
		zap.Int("atoms", s.Len()),
		zap.Int("species", len(s.SpeciesCounts())),
	)

	return s, idx, nil
}

// writeOut writes s as POSCAR and, with xyz, a companion path.xyz.
func writeOut(path string, s *structure.Structure, xyz bool) error {
	if err := poscar.WriteFile(path, s); err != nil {
		return err
	}
	if xyz {
		return writeXYZFile(path+".xyz", s)
	}

	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
