package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/fontsized/internal/application/usecase"
	"github.com/bnema/fontsized/internal/config"
	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/infrastructure/host"
	"github.com/bnema/fontsized/internal/infrastructure/hostbridge"
	"github.com/bnema/fontsized/internal/infrastructure/xrandr"
	"github.com/bnema/fontsized/internal/infrastructure/xrdb"
	"github.com/bnema/fontsized/internal/logging"
	"github.com/bnema/fontsized/internal/plugin"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the plugin event loop",
	Long: `Run reads host events from stdin until the host closes the pipe:

  init
  cmd font:increment
  configure <x> <y> <width> <height>

Font changes are pushed to the terminal over its tty and persisted with
xrdb; window moves trigger a DPI lookup via xrandr.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	cfg, err := mgr.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})
	ctx := logging.WithContext(cmd.Context(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tty, err := os.OpenFile(cfg.Host.TTY, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.Host.TTY, err)
	}
	defer func() { _ = tty.Close() }()

	hostAdapter := host.NewURxvt(cfg.Host.Prefix, tty)
	if err := hostAdapter.Prime(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not prime host resources, starting empty")
	}

	syncUC := usecase.NewSyncDisplayUseCase(hostAdapter, cfg.DPI.Scale, cfg.DPI.Baseline)
	resizeUC := usecase.NewResizeFontUseCase(
		xrdb.NewStore(cfg.Resources.BaseFile),
		syncUC,
		stepPolicy(cfg),
		cfg.Host.Prefix,
	)
	p := plugin.New(hostAdapter, xrandr.NewEnumerator(), resizeUC, syncUC)

	mgr.OnConfigChange(func(c *config.Config) {
		resizeUC.SetPolicy(stepPolicy(c))
		syncUC.SetScaling(c.DPI.Scale, c.DPI.Baseline)
		logger.Info().Msg("configuration reloaded")
	})
	if err := mgr.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watching disabled")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return hostbridge.New(os.Stdin).Run(ctx, p)
	})
	if err := g.Wait(); err != nil && !isShutdown(err) {
		return err
	}
	return nil
}

func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled)
}

func stepPolicy(cfg *config.Config) fontspec.StepPolicy {
	return fontspec.StepPolicy{
		RestrictedFamily: cfg.Resize.RestrictedFamily,
		RestrictSizes:    cfg.Resize.RestrictSizes,
		Sizes:            cfg.Resize.Sizes,
	}
}
