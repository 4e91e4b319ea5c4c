// Package port defines the interfaces between application use cases and the
// outside world: the terminal host, the display server, and the resource
// database tooling.
package port

import (
	"context"

	"github.com/bnema/fontsized/internal/domain/fontspec"
)

// Host is the terminal-side surface the plugin drives: named font
// resources, raw control sequences, and viewport geometry.
type Host interface {
	// FontResource returns the host's current resolved value for a font
	// role, or "" when the role has no value.
	FontResource(ctx context.Context, role fontspec.Role) (string, error)

	// SetFontResource replaces the host's value for a font role. This
	// updates the host's live resource state; it does not by itself force
	// a redraw.
	SetFontResource(ctx context.Context, role fontspec.Role, value string) error

	// SendEscape writes a raw control sequence to the terminal so the
	// running display reflows immediately.
	SendEscape(ctx context.Context, seq string) error

	// MoveResize reasserts the viewport geometry in pixels.
	MoveResize(ctx context.Context, x, y, width, height int) error
}
