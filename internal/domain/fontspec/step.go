package fontspec

import (
	"sort"
	"strings"
)

// StepPolicy controls how Step treats the restricted font family.
//
// Some bitmap families only ship a fixed ladder of sizes; stepping such a
// family walks the ladder instead of free-incrementing, and an off-ladder
// size snaps back to the ladder's median.
type StepPolicy struct {
	// RestrictedFamily is matched as a case-insensitive prefix of the
	// descriptor's family segment. Empty disables restriction entirely.
	RestrictedFamily string
	// RestrictSizes enables ladder stepping for the restricted family.
	RestrictSizes bool
	// Sizes is the monotonically increasing ladder of supported pixel sizes.
	Sizes []int
}

// Restricts reports whether the policy applies ladder stepping to the given
// family segment.
func (p StepPolicy) Restricts(family string) bool {
	if !p.RestrictSizes || p.RestrictedFamily == "" || len(p.Sizes) == 0 {
		return false
	}
	return strings.HasPrefix(strings.ToLower(family), strings.ToLower(p.RestrictedFamily))
}

// median returns the central value of the ladder: the exact middle element
// for odd lengths, the average of the two central elements for even lengths.
// The ladder is treated as sorted input but sorted defensively anyway since
// it comes from configuration.
func (p StepPolicy) median() int {
	sizes := make([]int, len(p.Sizes))
	copy(sizes, p.Sizes)
	sort.Ints(sizes)

	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		return sizes[mid]
	}
	return (sizes[mid-1] + sizes[mid]) / 2
}

// Step returns a copy of the descriptor with its pixelsize stepped by delta.
//
// Descriptors without a well-formed pixelsize segment are returned unchanged.
// For the policy's restricted family the ladder rules apply: stepping past
// either end keeps the current size, and a size not on the ladder resets to
// the ladder median regardless of delta. All other segments and their order
// are preserved exactly.
func (d Descriptor) Step(delta int, pol StepPolicy) Descriptor {
	idx, size := d.pixelSizeAt(0)
	if idx < 0 {
		return d
	}

	if pol.Restricts(d.Family()) {
		return d.withPixelSize(idx, stepLadder(size, delta, pol))
	}
	return d.withPixelSize(idx, size+delta)
}

func stepLadder(size, delta int, pol StepPolicy) int {
	for i, s := range pol.Sizes {
		if s != size {
			continue
		}
		next := i + delta
		if next < 0 || next >= len(pol.Sizes) {
			// No wraparound at either end of the ladder.
			return size
		}
		return pol.Sizes[next]
	}
	// Off-ladder size, e.g. a stale resource value from a previous
	// configuration: snap to the middle of the ladder.
	return pol.median()
}
