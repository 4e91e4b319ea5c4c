// Package display models connected monitor geometry and the DPI lookup
// used to rescale fonts when the terminal window changes monitors.
package display

// Rotation is an output's reported rotation state.
type Rotation string

const (
	RotationNormal   Rotation = "normal"
	RotationLeft     Rotation = "left"
	RotationRight    Rotation = "right"
	RotationInverted Rotation = "inverted"
)

// InchesPerMM converts physical millimeters to inches.
const InchesPerMM = 0.0393701

// DPIUnknown is the sentinel reading when no output claims a point or the
// claiming output reports no physical size.
const DPIUnknown = 0.0

// Output describes one connected display output as enumerated from the
// display server: pixel geometry in the root coordinate space, rotation,
// and the physical panel size in millimeters.
type Output struct {
	Name       string
	Width      int // pixels
	Height     int // pixels
	X          int // root-space offset
	Y          int
	Rotation   Rotation
	PhysWidth  int // millimeters
	PhysHeight int // millimeters
}

// Contains reports whether the point lies within the output's raw bounding
// box [X, X+Width) x [Y, Y+Height). The box is evaluated pre-rotation;
// rotation only affects which physical edge maps to the pixel width.
func (o Output) Contains(px, py int) bool {
	return px >= o.X && px < o.X+o.Width && py >= o.Y && py < o.Y+o.Height
}

// DPI returns the output's horizontal pixel density. Rotation left/right
// swaps the physical edges before computing. Outputs reporting a zero
// physical width (projectors, broken EDID) yield DPIUnknown.
func (o Output) DPI() float64 {
	mm := o.PhysWidth
	if o.Rotation == RotationLeft || o.Rotation == RotationRight {
		mm = o.PhysHeight
	}
	if mm <= 0 {
		return DPIUnknown
	}
	return float64(o.Width) / (float64(mm) * InchesPerMM)
}

// DPIAt returns the DPI of the first output containing the point, or
// DPIUnknown when no output does.
func DPIAt(px, py int, outputs []Output) float64 {
	for _, o := range outputs {
		if o.Contains(px, py) {
			return o.DPI()
		}
	}
	return DPIUnknown
}
