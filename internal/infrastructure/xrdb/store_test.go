package xrdb

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPipe struct {
	strings.Builder
	closed   bool
	writeErr error
	closeErr error
}

func (p *recordingPipe) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	return p.Builder.Write(b)
}

// WriteString routes through Write so the embedded Builder's promoted
// WriteString cannot let io.WriteString bypass the injected writeErr.
func (p *recordingPipe) WriteString(s string) (int, error) {
	return p.Write([]byte(s))
}

func (p *recordingPipe) Close() error {
	p.closed = true
	return p.closeErr
}

func TestStoreMerge(t *testing.T) {
	t.Run("streams one line per resource and waits", func(t *testing.T) {
		pipe := &recordingPipe{}
		waited := false
		s := NewStore("/home/u/.Xdefaults")
		s.startMerge = func(context.Context) (io.WriteCloser, func() error, error) {
			return pipe, func() error { waited = true; return nil }, nil
		}

		err := s.Merge(context.Background(), []string{
			"URxvt.font: xft:Foo:pixelsize=12",
			"URxvt.imFont: ",
		})

		require.NoError(t, err)
		assert.Equal(t, "URxvt.font: xft:Foo:pixelsize=12\nURxvt.imFont: \n", pipe.String())
		assert.True(t, pipe.closed)
		assert.True(t, waited)
	})

	t.Run("start failure is fatal", func(t *testing.T) {
		s := NewStore("/home/u/.Xdefaults")
		s.startMerge = func(context.Context) (io.WriteCloser, func() error, error) {
			return nil, nil, errors.New("fork failed")
		}

		err := s.Merge(context.Background(), []string{"a: b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start xrdb -merge")
	})

	t.Run("broken pipe surfaces immediately", func(t *testing.T) {
		pipe := &recordingPipe{writeErr: errors.New("broken pipe")}
		s := NewStore("/home/u/.Xdefaults")
		s.startMerge = func(context.Context) (io.WriteCloser, func() error, error) {
			return pipe, func() error { return nil }, nil
		}

		err := s.Merge(context.Background(), []string{"a: b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
		assert.True(t, pipe.closed)
	})

	t.Run("non-zero exit status is fatal", func(t *testing.T) {
		pipe := &recordingPipe{}
		s := NewStore("/home/u/.Xdefaults")
		s.startMerge = func(context.Context) (io.WriteCloser, func() error, error) {
			return pipe, func() error { return errors.New("exit status 1") }, nil
		}

		err := s.Merge(context.Background(), []string{"a: b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xrdb -merge failed")
	})

	t.Run("close failure is fatal", func(t *testing.T) {
		pipe := &recordingPipe{closeErr: errors.New("pipe gone")}
		s := NewStore("/home/u/.Xdefaults")
		s.startMerge = func(context.Context) (io.WriteCloser, func() error, error) {
			return pipe, func() error { return nil }, nil
		}

		err := s.Merge(context.Background(), []string{"a: b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to close")
	})
}

func TestStoreBaseFileCommands(t *testing.T) {
	var calls [][]string
	s := NewStore("/home/u/.Xdefaults")
	s.run = func(_ context.Context, arg ...string) error {
		calls = append(calls, arg)
		return nil
	}

	require.NoError(t, s.LoadBase(context.Background()))
	require.NoError(t, s.RederiveBase(context.Background()))

	assert.Equal(t, [][]string{
		{"-load", "/home/u/.Xdefaults"},
		{"-edit", "/home/u/.Xdefaults"},
	}, calls)
}
