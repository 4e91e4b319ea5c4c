// Package fontspec models xft-style font descriptors and the size
// transformations applied to them.
//
// A descriptor is a colon-delimited attribute string such as
// "xft:DejaVu Sans Mono:pixelsize=12:antialias=true". Segments other than
// pixelsize are opaque and must survive parse/serialize byte-identically.
package fontspec

import (
	"strconv"
	"strings"
)

// Role identifies one of the five font resources a terminal derives its
// rendering from. The set is fixed.
type Role string

const (
	RolePrimary     Role = "font"
	RoleInputMethod Role = "imFont"
	RoleBold        Role = "boldFont"
	RoleItalic      Role = "italicFont"
	RoleBoldItalic  Role = "boldItalicFont"
)

// roles is the fixed enumeration order used everywhere a role sequence is
// observable (persistence lines, display pushes).
var roles = []Role{RolePrimary, RoleInputMethod, RoleBold, RoleItalic, RoleBoldItalic}

// Roles returns the font roles in their fixed enumeration order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

const pixelsizePrefix = "pixelsize="

// Descriptor is a parsed font descriptor. The zero value is the empty
// descriptor. Descriptors are immutable; transformations return a new value.
type Descriptor struct {
	segments []string
}

// Parse splits a raw descriptor string into its colon-delimited segments.
// No validation is performed; any string round-trips through String.
func Parse(raw string) Descriptor {
	if raw == "" {
		return Descriptor{}
	}
	return Descriptor{segments: strings.Split(raw, ":")}
}

// String re-serializes the descriptor. Untouched descriptors serialize
// byte-identically to their input.
func (d Descriptor) String() string {
	return strings.Join(d.segments, ":")
}

// IsZero reports whether the descriptor has no segments.
func (d Descriptor) IsZero() bool {
	return len(d.segments) == 0
}

// Family returns the first colon-delimited segment, or "" for the empty
// descriptor.
func (d Descriptor) Family() string {
	if len(d.segments) == 0 {
		return ""
	}
	return d.segments[0]
}

// PixelSize returns the value of the pixelsize segment. ok is false when no
// well-formed pixelsize segment exists.
func (d Descriptor) PixelSize() (size int, ok bool) {
	idx, size := d.pixelSizeAt(0)
	return size, idx >= 0
}

// pixelSizeAt finds the first well-formed pixelsize segment at or after
// index from. Returns index -1 when there is none.
func (d Descriptor) pixelSizeAt(from int) (idx, size int) {
	for i := from; i < len(d.segments); i++ {
		rest, found := strings.CutPrefix(d.segments[i], pixelsizePrefix)
		if !found {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		return i, n
	}
	return -1, 0
}

// withPixelSize returns a copy with the segment at idx replaced by the given
// size. All other segments are shared-by-copy and keep their order.
func (d Descriptor) withPixelSize(idx, size int) Descriptor {
	segments := make([]string, len(d.segments))
	copy(segments, d.segments)
	segments[idx] = pixelsizePrefix + strconv.Itoa(size)
	return Descriptor{segments: segments}
}

// Set maps every font role to its current descriptor. It is always fully
// populated (missing host resources parse to the empty descriptor) and is
// owned by a single plugin instance; entries are replaced, never mutated.
type Set struct {
	byRole map[Role]Descriptor
}

// NewSet builds a set from raw per-role descriptor strings. Roles absent
// from the map get the empty descriptor.
func NewSet(raw map[Role]string) *Set {
	byRole := make(map[Role]Descriptor, len(roles))
	for _, role := range roles {
		byRole[role] = Parse(raw[role])
	}
	return &Set{byRole: byRole}
}

// Get returns the descriptor for a role.
func (s *Set) Get(role Role) Descriptor {
	return s.byRole[role]
}

// Replace swaps in a new descriptor for a role.
func (s *Set) Replace(role Role, d Descriptor) {
	s.byRole[role] = d
}
