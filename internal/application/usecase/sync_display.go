package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/fontsized/internal/application/port"
	"github.com/bnema/fontsized/internal/domain/display"
	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/logging"
)

// fontReflowEscape forces the running terminal to re-derive its fonts from
// the given primary font value (OSC 50).
const fontReflowEscape = "\x1b]50;%s\a"

// SyncDisplayUseCase pushes the current font set to the host, scaled for
// the monitor the window currently sits on, and triggers a redraw.
type SyncDisplayUseCase struct {
	host port.Host

	mu       sync.RWMutex
	scale    bool
	baseline float64
}

// NewSyncDisplayUseCase creates the display synchronizer. baseline is the
// DPI at which descriptors are considered unscaled.
func NewSyncDisplayUseCase(host port.Host, scale bool, baseline int) *SyncDisplayUseCase {
	return &SyncDisplayUseCase{
		host:     host,
		scale:    scale,
		baseline: float64(baseline),
	}
}

// SetScaling updates the scaling policy, typically on config reload.
func (uc *SyncDisplayUseCase) SetScaling(scale bool, baseline int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.scale = scale
	uc.baseline = float64(baseline)
}

// Baseline returns the configured baseline DPI.
func (uc *SyncDisplayUseCase) Baseline() float64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.baseline
}

// Push hands every role's descriptor to the host, rescaled for dpi when
// scaling is enabled and the reading is known, then emits the reflow escape
// with the host's resolved primary font.
func (uc *SyncDisplayUseCase) Push(ctx context.Context, set *fontspec.Set, dpi float64) error {
	log := logging.FromContext(ctx)

	uc.mu.RLock()
	scale, baseline := uc.scale, uc.baseline
	uc.mu.RUnlock()

	for _, role := range fontspec.Roles() {
		d := set.Get(role)
		if scale && dpi != display.DPIUnknown {
			d = d.Scale(dpi, baseline)
		}
		if err := uc.host.SetFontResource(ctx, role, d.String()); err != nil {
			return fmt.Errorf("failed to set %s resource: %w", role, err)
		}
	}

	resolved, err := uc.host.FontResource(ctx, fontspec.RolePrimary)
	if err != nil {
		return fmt.Errorf("failed to read resolved primary font: %w", err)
	}
	if resolved == "" {
		log.Debug().Msg("no resolved primary font, skipping reflow escape")
		return nil
	}

	if err := uc.host.SendEscape(ctx, fmt.Sprintf(fontReflowEscape, resolved)); err != nil {
		return fmt.Errorf("failed to send reflow escape: %w", err)
	}

	log.Debug().Float64("dpi", dpi).Bool("scaled", scale && dpi != display.DPIUnknown).Msg("fonts pushed to host")
	return nil
}
