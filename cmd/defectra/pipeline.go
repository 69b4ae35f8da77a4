// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/defectra/defect"
	"github.com/katalvlaran/defectra/neighbor"
	"github.com/katalvlaran/defectra/structure"
	"go.uber.org/zap"
)

// defectRun bundles a classified structure.
type defectRun struct {
	s      *structure.Structure
	idx    *neighbor.Index
	result *defect.Result
}

// findDefects loads path and runs the configured defect method.
func (a *app) findDefects(path string) (*defectRun, error) {
	method, err := defect.ParseMethod(a.cfg.Defect.Method)
	if err != nil {
		return nil, err
	}
	s, idx, err := a.load(path)
	if err != nil {
		return nil, err
	}
	c, err := defect.NewClassifier(idx, s,
		defect.WithPolicy(a.cfg.ThresholdPolicy()),
		defect.WithLogger(a.log),
	)
	if err != nil {
		return nil, err
	}
	res, err := c.Run(method)
	if err != nil {
		return nil, err
	}
	a.log.Info("defects classified",
		zap.String("method", string(method)),
		zap.Int("defects", len(res.All())),
		zap.Int("warnings", len(res.Warnings())),
	)

	return &defectRun{s: s, idx: idx, result: res}, nil
}
