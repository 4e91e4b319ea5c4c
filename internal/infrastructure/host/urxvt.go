// Package host adapts an rxvt-unicode terminal as the plugin's host: font
// resources are primed from the live resource database and updated
// in-memory, and display changes reach the terminal as control sequences on
// its tty.
package host

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/bnema/fontsized/internal/domain/fontspec"
	"github.com/bnema/fontsized/internal/logging"
)

// Per-role OSC codes understood by urxvt. The input-method font has no
// escape; it is resource-only.
var oscCodes = map[fontspec.Role]int{
	fontspec.RolePrimary:    50,
	fontspec.RoleBold:       710,
	fontspec.RoleItalic:     711,
	fontspec.RoleBoldItalic: 712,
}

// URxvt implements port.Host for an rxvt-unicode terminal.
type URxvt struct {
	prefix    string
	tty       io.Writer
	resources map[fontspec.Role]string

	// Process seam, overridable in tests.
	query func(ctx context.Context) ([]byte, error)
}

// NewURxvt creates a host adapter. prefix is the resource name prefix
// (e.g. "URxvt"); tty is where control sequences are written.
func NewURxvt(prefix string, tty io.Writer) *URxvt {
	u := &URxvt{
		prefix:    prefix,
		tty:       tty,
		resources: make(map[fontspec.Role]string),
	}
	u.query = u.xrdbQuery
	return u
}

// Prime loads the host's current font resources from the live resource
// database. Roles without a database entry stay empty.
func (u *URxvt) Prime(ctx context.Context) error {
	log := logging.FromContext(ctx)

	raw, err := u.query(ctx)
	if err != nil {
		return fmt.Errorf("failed to query resource database: %w", err)
	}

	u.resources = parseQuery(u.prefix, raw)
	log.Debug().Int("resources", len(u.resources)).Msg("host font resources primed")
	return nil
}

// FontResource implements port.Host.
func (u *URxvt) FontResource(_ context.Context, role fontspec.Role) (string, error) {
	return u.resources[role], nil
}

// SetFontResource implements port.Host. The role's OSC sequence is emitted
// when urxvt has one, so the terminal picks the value up without waiting
// for the reflow escape.
func (u *URxvt) SetFontResource(ctx context.Context, role fontspec.Role, value string) error {
	u.resources[role] = value

	code, ok := oscCodes[role]
	if !ok {
		return nil
	}
	return u.SendEscape(ctx, fmt.Sprintf("\x1b]%d;%s\a", code, value))
}

// SendEscape implements port.Host.
func (u *URxvt) SendEscape(_ context.Context, seq string) error {
	if _, err := io.WriteString(u.tty, seq); err != nil {
		return fmt.Errorf("failed to write control sequence: %w", err)
	}
	return nil
}

// MoveResize implements port.Host using XTerm window operations: CSI 3
// moves the window, CSI 4 resizes it in pixels.
func (u *URxvt) MoveResize(ctx context.Context, x, y, width, height int) error {
	if err := u.SendEscape(ctx, fmt.Sprintf("\x1b[3;%d;%dt", x, y)); err != nil {
		return err
	}
	return u.SendEscape(ctx, fmt.Sprintf("\x1b[4;%d;%dt", height, width))
}

func (u *URxvt) xrdbQuery(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "xrdb", "-query").Output()
}

// parseQuery extracts the per-role font values from xrdb -query output.
// Both "Prefix.font" and "Prefix*font" name forms are accepted; the value
// is everything after the first colon, with surrounding whitespace trimmed.
func parseQuery(prefix string, raw []byte) map[fontspec.Role]string {
	byName := make(map[string]fontspec.Role)
	for _, role := range fontspec.Roles() {
		byName[prefix+"."+string(role)] = role
		byName[prefix+"*"+string(role)] = role
	}

	resources := make(map[fontspec.Role]string)
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		name, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		role, ok := byName[strings.TrimSpace(name)]
		if !ok {
			continue
		}
		resources[role] = strings.TrimSpace(value)
	}
	return resources
}
