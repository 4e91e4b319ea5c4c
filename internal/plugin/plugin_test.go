package plugin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontsized/internal/application/port/mocks"
	"github.com/bnema/fontsized/internal/application/usecase"
	"github.com/bnema/fontsized/internal/domain/display"
	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/plugin"
)

var testPolicy = fontspec.StepPolicy{
	RestrictedFamily: "Monaco",
	RestrictSizes:    true,
	Sizes:            []int{8, 9, 10, 11, 13, 15, 16, 18, 21, 22, 28},
}

type fixture struct {
	plugin   *plugin.Plugin
	host     *mocks.MockHost
	displays *mocks.MockDisplayEnumerator
	store    *mocks.MockResourceStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	host := mocks.NewMockHost()
	resources := map[fontspec.Role]string{
		fontspec.RolePrimary: "xft:Foo:pixelsize=12",
		fontspec.RoleBold:    "xft:Foo:bold:pixelsize=12",
	}
	host.FontResourceFunc = func(_ context.Context, role fontspec.Role) (string, error) {
		return resources[role], nil
	}

	displays := mocks.NewMockDisplayEnumerator()
	store := mocks.NewMockResourceStore()
	syncUC := usecase.NewSyncDisplayUseCase(host, true, 75)
	resizeUC := usecase.NewResizeFontUseCase(store, syncUC, testPolicy, "URxvt")

	p := plugin.New(host, displays, resizeUC, syncUC)
	require.NoError(t, p.OnInit(context.Background()))

	// Drop the reads OnInit performed so tests assert on their own calls.
	host.FontResourceCalls = nil
	return &fixture{plugin: p, host: host, displays: displays, store: store}
}

func singleMonitor() []display.Output {
	// 1920px over 344mm is ~141.8 DPI.
	return []display.Output{{
		Name:  "eDP-1",
		Width: 1920, Height: 1080, X: 0, Y: 0,
		Rotation:  display.RotationNormal,
		PhysWidth: 344, PhysHeight: 194,
	}}
}

func TestPluginOnUserCommand(t *testing.T) {
	t.Run("increment steps and persists", func(t *testing.T) {
		f := newFixture(t)

		err := f.plugin.OnUserCommand(context.Background(), "font:increment")

		require.NoError(t, err)
		require.Len(t, f.store.MergeCalls, 1)
		assert.Equal(t, "URxvt.font: xft:Foo:pixelsize=13", f.store.MergeCalls[0][0])
	})

	t.Run("unrecognized command is silently ignored", func(t *testing.T) {
		f := newFixture(t)

		err := f.plugin.OnUserCommand(context.Background(), "font:embiggen")

		require.NoError(t, err)
		assert.Empty(t, f.host.SetCalls)
		assert.Empty(t, f.store.MergeCalls)
	})

	t.Run("reasserts known window geometry after a resize", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 10, Y: 20, Width: 800, Height: 600}))

		err := f.plugin.OnUserCommand(context.Background(), "font:increment")

		require.NoError(t, err)
		assert.Equal(t, []mocks.MoveResizeCall{{X: 10, Y: 20, Width: 800, Height: 600}}, f.host.MoveResizeCalls)
	})

	t.Run("no geometry reassertion before the first configure", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.plugin.OnUserCommand(context.Background(), "font:increment"))
		assert.Empty(t, f.host.MoveResizeCalls)
	})
}

func TestPluginOnConfigureNotify(t *testing.T) {
	t.Run("DPI change re-pushes scaled fonts without persisting", func(t *testing.T) {
		f := newFixture(t)
		f.displays.OutputsFunc = func(context.Context) ([]display.Output, error) {
			return singleMonitor(), nil
		}

		err := f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 0, Y: 0, Width: 800, Height: 600})

		require.NoError(t, err)
		require.NotEmpty(t, f.host.SetCalls)
		// 12 * (1920/(344*0.0393701)) / 75 truncates to 22.
		assert.Equal(t, "xft:Foo:pixelsize=22", f.host.SetCalls[0].Value)
		assert.Empty(t, f.store.MergeCalls)
	})

	t.Run("unchanged center skips enumeration", func(t *testing.T) {
		f := newFixture(t)
		geom := plugin.Geometry{X: 100, Y: 100, Width: 800, Height: 600}

		require.NoError(t, f.plugin.OnConfigureNotify(context.Background(), geom))
		require.NoError(t, f.plugin.OnConfigureNotify(context.Background(), geom))

		assert.Equal(t, 1, f.displays.OutputsCalls)
	})

	t.Run("a move within the same monitor does not re-push", func(t *testing.T) {
		f := newFixture(t)
		f.displays.OutputsFunc = func(context.Context) ([]display.Output, error) {
			return singleMonitor(), nil
		}

		require.NoError(t, f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 0, Y: 0, Width: 800, Height: 600}))
		pushed := len(f.host.SetCalls)

		require.NoError(t, f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 50, Y: 50, Width: 800, Height: 600}))
		assert.Len(t, f.host.SetCalls, pushed)
	})

	t.Run("unknown DPI skips the update", func(t *testing.T) {
		f := newFixture(t)
		// No outputs enumerate: the window center is claimed by nothing.

		err := f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 9000, Y: 9000, Width: 800, Height: 600})

		require.NoError(t, err)
		assert.Empty(t, f.host.SetCalls)
	})

	t.Run("enumeration failure is best-effort", func(t *testing.T) {
		f := newFixture(t)
		f.displays.OutputsFunc = func(context.Context) ([]display.Output, error) {
			return nil, assert.AnError
		}

		err := f.plugin.OnConfigureNotify(context.Background(), plugin.Geometry{X: 0, Y: 0, Width: 800, Height: 600})

		require.NoError(t, err)
		assert.Empty(t, f.host.SetCalls)
	})
}
