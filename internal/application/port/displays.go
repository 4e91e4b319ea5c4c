package port

import (
	"context"

	"github.com/bnema/fontsized/internal/domain/display"
)

// DisplayEnumerator lists the currently connected display outputs.
// Enumeration is best-effort: implementations return an empty slice rather
// than failing the caller when the display server cannot be queried.
type DisplayEnumerator interface {
	Outputs(ctx context.Context) ([]display.Output, error)
}
