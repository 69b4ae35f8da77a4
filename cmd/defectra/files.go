// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/defectra/poscar"
	"github.com/katalvlaran/defectra/structure"
)

func writeXYZFile(path string, s *structure.Structure) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xyz: %w", err)
	}
	if err = poscar.WriteXYZ(f, s); err != nil {
		f.Close()
		return fmt.Errorf("xyz: %w", err)
	}

	return f.Close()
}
