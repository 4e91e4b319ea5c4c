package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/fontsized/internal/config"
	"github.com/bnema/fontsized/internal/infrastructure/xrandr"
	"github.com/bnema/fontsized/internal/infrastructure/xrdb"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external tooling and diagnose issues",
	Long: `Doctor checks the external collaborators the plugin depends on:

- xrdb (persistence, required)
- xrandr (per-monitor DPI scaling, optional)
- the configured tty (control sequences, required)`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	cfg, err := mgr.Load()
	if err != nil {
		return err
	}

	failed := false

	if xrdb.NewStore(cfg.Resources.BaseFile).Available() {
		fmt.Println("✓ xrdb found")
	} else {
		fmt.Println("✗ xrdb not found: font changes cannot be persisted")
		failed = true
	}

	if xrandr.NewEnumerator().Available() {
		fmt.Println("✓ xrandr found")
	} else {
		fmt.Println("! xrandr not found: per-monitor DPI scaling disabled")
	}

	if err := checkTTY(cfg.Host.TTY); err != nil {
		fmt.Printf("✗ %s: %v\n", cfg.Host.TTY, err)
		failed = true
	} else {
		fmt.Printf("✓ %s is a writable terminal\n", cfg.Host.TTY)
	}

	if failed {
		return fmt.Errorf("some required checks failed")
	}
	return nil
}

// checkTTY verifies the configured device can be opened for writing and is
// an actual terminal.
func checkTTY(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS); err != nil {
		return fmt.Errorf("not a terminal: %w", err)
	}
	return nil
}
