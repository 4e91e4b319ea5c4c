// Package xrandr enumerates connected display outputs by shelling out to
// the xrandr tool and parsing its query output.
package xrandr

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/bnema/fontsized/internal/domain/display"
	"github.com/bnema/fontsized/internal/logging"
)

// connectedLine matches one connected-output line of `xrandr --query`, e.g.
//
//	HDMI-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 509mm x 286mm
//	DP-1 connected 1080x1920+1920+0 left (normal left inverted right x axis y axis) 286mm x 509mm
var connectedLine = regexp.MustCompile(
	`^(\S+) connected(?: primary)? (\d+)x(\d+)([+-]\d+)([+-]\d+)(?: (normal|left|inverted|right))? \([^)]*\) (\d+)mm x (\d+)mm`)

// Enumerator implements port.DisplayEnumerator using xrandr.
type Enumerator struct{}

// NewEnumerator creates a new xrandr-backed enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// Available returns true if the xrandr command is available on the system.
func (*Enumerator) Available() bool {
	_, err := exec.LookPath("xrandr")
	return err == nil
}

// Outputs implements port.DisplayEnumerator. Enumeration is best-effort: a
// failed or unparseable query yields no outputs, never an error the caller
// has to handle beyond an empty slice.
func (e *Enumerator) Outputs(ctx context.Context) ([]display.Output, error) {
	log := logging.FromContext(ctx)

	out, err := exec.CommandContext(ctx, "xrandr", "--query").Output()
	if err != nil {
		log.Warn().Err(err).Msg("xrandr query failed")
		return nil, nil
	}
	return parseOutputs(out), nil
}

// parseOutputs extracts connected outputs from xrandr query output.
// Disconnected outputs and lines that do not match are skipped.
func parseOutputs(raw []byte) []display.Output {
	var outputs []display.Output

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		m := connectedLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		rotation := display.Rotation(m[6])
		if rotation == "" {
			rotation = display.RotationNormal
		}

		outputs = append(outputs, display.Output{
			Name:       m[1],
			Width:      atoi(m[2]),
			Height:     atoi(m[3]),
			X:          atoi(m[4]),
			Y:          atoi(m[5]),
			Rotation:   rotation,
			PhysWidth:  atoi(m[7]),
			PhysHeight: atoi(m[8]),
		})
	}
	return outputs
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
