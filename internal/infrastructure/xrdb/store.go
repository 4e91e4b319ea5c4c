// Package xrdb persists font resources through the xrdb tool: reload the
// live database from the base file, merge updated lines over stdin, and
// rewrite the base file from the live database.
package xrdb

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/bnema/fontsized/internal/logging"
)

// Store implements port.ResourceStore against the xrdb command.
type Store struct {
	baseFile string

	// Process seams, overridable in tests.
	run        func(ctx context.Context, arg ...string) error
	startMerge func(ctx context.Context) (stdin io.WriteCloser, wait func() error, err error)
}

// NewStore creates a store persisting through the given base resource file
// (typically ~/.Xdefaults).
func NewStore(baseFile string) *Store {
	s := &Store{baseFile: baseFile}
	s.run = s.runXrdb
	s.startMerge = s.startXrdbMerge
	return s
}

// Available returns true if the xrdb command is available on the system.
func (*Store) Available() bool {
	_, err := exec.LookPath("xrdb")
	return err == nil
}

// LoadBase implements port.ResourceStore.
func (s *Store) LoadBase(ctx context.Context) error {
	return s.run(ctx, "-load", s.baseFile)
}

// RederiveBase implements port.ResourceStore.
func (s *Store) RederiveBase(ctx context.Context) error {
	return s.run(ctx, "-edit", s.baseFile)
}

// Merge implements port.ResourceStore. Every line is written to the merge
// process's stdin followed by a newline; a failure to start, write, or a
// non-zero exit is returned to the caller, which must treat it as fatal.
func (s *Store) Merge(ctx context.Context, lines []string) error {
	log := logging.FromContext(ctx)

	stdin, wait, err := s.startMerge(ctx)
	if err != nil {
		return fmt.Errorf("failed to start xrdb -merge: %w", err)
	}

	for _, line := range lines {
		if _, err := io.WriteString(stdin, line+"\n"); err != nil {
			_ = stdin.Close()
			_ = wait()
			return fmt.Errorf("failed to write to xrdb -merge: %w", err)
		}
	}

	if err := stdin.Close(); err != nil {
		_ = wait()
		return fmt.Errorf("failed to close xrdb -merge stream: %w", err)
	}
	if err := wait(); err != nil {
		return fmt.Errorf("xrdb -merge failed: %w", err)
	}

	log.Debug().Int("lines", len(lines)).Msg("resources merged")
	return nil
}

func (s *Store) runXrdb(ctx context.Context, arg ...string) error {
	if err := exec.CommandContext(ctx, "xrdb", arg...).Run(); err != nil {
		return fmt.Errorf("xrdb %s: %w", arg[0], err)
	}
	return nil
}

func (s *Store) startXrdbMerge(ctx context.Context) (io.WriteCloser, func() error, error) {
	cmd := exec.CommandContext(ctx, "xrdb", "-merge")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}
	return stdin, cmd.Wait, nil
}
