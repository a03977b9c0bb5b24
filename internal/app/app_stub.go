//go:build !ebiten

package app

import (
	"fmt"

	"lifegen/internal/core"
	pcore "lifegen/pkg/core"
)

// Run reports that the window front end is not compiled in.
func Run(core.Sim, func() error, int, int) error {
	return fmt.Errorf("%w: the GUI requires building with -tags ebiten", pcore.ErrInvalidOperation)
}
