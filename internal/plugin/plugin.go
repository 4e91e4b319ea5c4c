// Package plugin holds the single-instance controller behind the host's
// callbacks: it owns the font set, the last observed window center, and the
// current DPI reading.
//
// The host delivers one callback at a time; handlers run to completion with
// no re-entry, so the state here has a single owner and needs no locking.
package plugin

import (
	"context"
	"fmt"

	"github.com/bnema/fontsized/internal/application/port"
	"github.com/bnema/fontsized/internal/application/usecase"
	"github.com/bnema/fontsized/internal/domain/display"
	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/logging"
)

// Geometry is a window's root-space position and pixel size as delivered by
// a configure event.
type Geometry struct {
	X, Y, Width, Height int
}

// Center returns the window's center point in root coordinates.
func (g Geometry) Center() (cx, cy int) {
	return g.X + g.Width/2, g.Y + g.Height/2
}

// Plugin is the host-facing controller. Create with New, then feed it the
// host callbacks.
type Plugin struct {
	host     port.Host
	displays port.DisplayEnumerator
	resize   *usecase.ResizeFontUseCase
	sync     *usecase.SyncDisplayUseCase

	set      *fontspec.Set
	geom     Geometry
	haveGeom bool
	centerX  int
	centerY  int
	dpi      float64
}

// New wires a plugin instance. OnInit must run before any other callback.
func New(host port.Host, displays port.DisplayEnumerator, resize *usecase.ResizeFontUseCase, syncUC *usecase.SyncDisplayUseCase) *Plugin {
	return &Plugin{
		host:     host,
		displays: displays,
		resize:   resize,
		sync:     syncUC,
	}
}

// OnInit reads the initial per-role descriptors from the host and starts
// from the baseline DPI at center (0,0).
func (p *Plugin) OnInit(ctx context.Context) error {
	log := logging.FromContext(ctx)

	raw := make(map[fontspec.Role]string)
	for _, role := range fontspec.Roles() {
		value, err := p.host.FontResource(ctx, role)
		if err != nil {
			return fmt.Errorf("failed to read %s resource: %w", role, err)
		}
		raw[role] = value
	}
	p.set = fontspec.NewSet(raw)
	p.dpi = p.sync.Baseline()
	p.centerX, p.centerY = 0, 0
	p.haveGeom = false

	log.Info().Str("font", p.set.Get(fontspec.RolePrimary).String()).Msg("plugin initialized")
	return nil
}

// OnUserCommand handles a bound keypress. Unrecognized commands are ignored
// silently; recognized ones step the font set, push it to the host, and
// persist it.
func (p *Plugin) OnUserCommand(ctx context.Context, cmd string) error {
	log := logging.FromContext(ctx)

	if p.set == nil {
		return fmt.Errorf("plugin not initialized")
	}

	delta, ok := usecase.ParseFontCommand(cmd)
	if !ok {
		log.Debug().Str("cmd", cmd).Msg("ignoring unrecognized command")
		return nil
	}

	if err := p.resize.Execute(ctx, p.set, delta, p.dpi); err != nil {
		return err
	}

	// Changing the font changes the cell size; reassert the previous
	// viewport geometry so the window does not creep across the screen.
	if p.haveGeom {
		if err := p.host.MoveResize(ctx, p.geom.X, p.geom.Y, p.geom.Width, p.geom.Height); err != nil {
			log.Warn().Err(err).Msg("failed to reassert window geometry")
		}
	}
	return nil
}

// OnConfigureNotify handles a window move or resize. When the window center
// lands on a monitor with a different DPI, the font set is re-pushed scaled
// for the new monitor. Nothing is persisted.
func (p *Plugin) OnConfigureNotify(ctx context.Context, geom Geometry) error {
	log := logging.FromContext(ctx)

	if p.set == nil {
		return fmt.Errorf("plugin not initialized")
	}

	p.geom = geom
	p.haveGeom = true

	cx, cy := geom.Center()
	if cx == p.centerX && cy == p.centerY {
		return nil
	}
	p.centerX, p.centerY = cx, cy

	outputs, err := p.displays.Outputs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to enumerate displays")
		return nil
	}

	dpi := display.DPIAt(cx, cy, outputs)
	if dpi == display.DPIUnknown {
		log.Debug().Int("cx", cx).Int("cy", cy).Msg("no monitor claims window center")
		return nil
	}
	if dpi == p.dpi {
		return nil
	}

	log.Info().Float64("from", p.dpi).Float64("to", dpi).Msg("monitor DPI changed")
	p.dpi = dpi
	return p.sync.Push(ctx, p.set, dpi)
}
