package host

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontsized/internal/domain/fontspec"
)

const sampleXrdbQuery = "URxvt.font:\txft:Monaco:pixelsize=12\n" +
	"URxvt*boldFont:\txft:Monaco:bold:pixelsize=12\n" +
	"URxvt.imFont:\txft:Sazanami Mincho:pixelsize=12\n" +
	"XTerm.font:\tfixed\n" +
	"URxvt.background:\t#000000\n" +
	"garbage line without a colon\n"

func TestURxvtPrime(t *testing.T) {
	t.Run("loads role values for both name forms", func(t *testing.T) {
		u := NewURxvt("URxvt", &bytes.Buffer{})
		u.query = func(context.Context) ([]byte, error) {
			return []byte(sampleXrdbQuery), nil
		}

		require.NoError(t, u.Prime(context.Background()))

		v, err := u.FontResource(context.Background(), fontspec.RolePrimary)
		require.NoError(t, err)
		assert.Equal(t, "xft:Monaco:pixelsize=12", v)

		v, err = u.FontResource(context.Background(), fontspec.RoleBold)
		require.NoError(t, err)
		assert.Equal(t, "xft:Monaco:bold:pixelsize=12", v)

		v, err = u.FontResource(context.Background(), fontspec.RoleInputMethod)
		require.NoError(t, err)
		assert.Equal(t, "xft:Sazanami Mincho:pixelsize=12", v)

		// Other prefixes and non-font resources are ignored.
		v, err = u.FontResource(context.Background(), fontspec.RoleItalic)
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("query failure is returned", func(t *testing.T) {
		u := NewURxvt("URxvt", &bytes.Buffer{})
		u.query = func(context.Context) ([]byte, error) {
			return nil, errors.New("xrdb not found")
		}

		assert.Error(t, u.Prime(context.Background()))
	})
}

func TestURxvtSetFontResource(t *testing.T) {
	t.Run("emits the role's OSC sequence", func(t *testing.T) {
		tty := &bytes.Buffer{}
		u := NewURxvt("URxvt", tty)

		require.NoError(t, u.SetFontResource(context.Background(), fontspec.RolePrimary, "xft:Foo:pixelsize=13"))
		assert.Equal(t, "\x1b]50;xft:Foo:pixelsize=13\a", tty.String())

		tty.Reset()
		require.NoError(t, u.SetFontResource(context.Background(), fontspec.RoleBoldItalic, "xft:Foo:pixelsize=13"))
		assert.Equal(t, "\x1b]712;xft:Foo:pixelsize=13\a", tty.String())
	})

	t.Run("input-method font is resource-only", func(t *testing.T) {
		tty := &bytes.Buffer{}
		u := NewURxvt("URxvt", tty)

		require.NoError(t, u.SetFontResource(context.Background(), fontspec.RoleInputMethod, "xft:Foo:pixelsize=13"))
		assert.Empty(t, tty.String())

		v, err := u.FontResource(context.Background(), fontspec.RoleInputMethod)
		require.NoError(t, err)
		assert.Equal(t, "xft:Foo:pixelsize=13", v)
	})
}

func TestURxvtMoveResize(t *testing.T) {
	tty := &bytes.Buffer{}
	u := NewURxvt("URxvt", tty)

	require.NoError(t, u.MoveResize(context.Background(), 10, 20, 800, 600))
	// Move first, then resize in pixels (height before width per XTerm CSI 4).
	assert.Equal(t, "\x1b[3;10;20t\x1b[4;600;800t", tty.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestURxvtSendEscapeError(t *testing.T) {
	u := NewURxvt("URxvt", failingWriter{})
	assert.Error(t, u.SendEscape(context.Background(), "\x1b]50;x\a"))
}
