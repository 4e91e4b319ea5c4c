// Package hostbridge receives the terminal runtime's plugin events as text
// lines on a pipe and dispatches them to the plugin handlers.
//
// The wire format is one event per line:
//
//	init
//	cmd <command string>
//	configure <x> <y> <width> <height>
//
// Events are dispatched one at a time in arrival order; a handler error
// terminates the run loop, matching the host's fail-fast plugin contract.
package hostbridge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/fontsized/internal/logging"
	"github.com/bnema/fontsized/internal/plugin"
)

// Handler is the set of callbacks the bridge dispatches into.
type Handler interface {
	OnInit(ctx context.Context) error
	OnUserCommand(ctx context.Context, cmd string) error
	OnConfigureNotify(ctx context.Context, geom plugin.Geometry) error
}

// Bridge reads events from the host pipe.
type Bridge struct {
	r io.Reader
}

// New creates a bridge reading from r (normally the pipe the terminal
// runtime opened for the plugin).
func New(r io.Reader) *Bridge {
	return &Bridge{r: r}
}

// Run dispatches events until EOF, the context is canceled, or a handler
// fails. Malformed lines are logged and skipped.
func (b *Bridge) Run(ctx context.Context, h Handler) error {
	log := logging.FromContext(ctx)

	scanner := bufio.NewScanner(b.r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := b.dispatch(ctx, h, line); err != nil {
			var malformed *malformedError
			if errors.As(err, &malformed) {
				log.Warn().Str("line", line).Err(err).Msg("skipping malformed event")
				continue
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read host events: %w", err)
	}

	log.Info().Msg("host event stream closed")
	return nil
}

func (b *Bridge) dispatch(ctx context.Context, h Handler, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "init":
		return h.OnInit(ctx)
	case "cmd":
		if rest == "" {
			return &malformedError{reason: "cmd event without command"}
		}
		return h.OnUserCommand(ctx, rest)
	case "configure":
		geom, err := parseGeometry(rest)
		if err != nil {
			return err
		}
		return h.OnConfigureNotify(ctx, geom)
	default:
		return &malformedError{reason: "unknown event verb " + verb}
	}
}

func parseGeometry(rest string) (plugin.Geometry, error) {
	fields := strings.Fields(rest)
	if len(fields) != 4 {
		return plugin.Geometry{}, &malformedError{reason: "configure event needs 4 fields"}
	}

	values := make([]int, 4)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return plugin.Geometry{}, &malformedError{reason: "configure field " + f + " is not an integer"}
		}
		values[i] = n
	}
	return plugin.Geometry{X: values[0], Y: values[1], Width: values[2], Height: values[3]}, nil
}

type malformedError struct {
	reason string
}

func (e *malformedError) Error() string {
	return e.reason
}
