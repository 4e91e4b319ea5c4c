// Package mocks provides hand-written test doubles for the port interfaces.
// Each mock records calls and delegates behavior to overridable Func fields,
// defaulting to no-ops.
package mocks

import (
	"context"

	"github.com/bnema/fontsized/internal/domain/fontspec"
)

// MockHost is a test double for port.Host.
type MockHost struct {
	FontResourceFunc    func(ctx context.Context, role fontspec.Role) (string, error)
	SetFontResourceFunc func(ctx context.Context, role fontspec.Role, value string) error
	SendEscapeFunc      func(ctx context.Context, seq string) error
	MoveResizeFunc      func(ctx context.Context, x, y, width, height int) error

	// Call tracking
	FontResourceCalls []fontspec.Role
	SetCalls          []SetFontResourceCall
	Escapes           []string
	MoveResizeCalls   []MoveResizeCall
}

// SetFontResourceCall records one SetFontResource invocation.
type SetFontResourceCall struct {
	Role  fontspec.Role
	Value string
}

// MoveResizeCall records one MoveResize invocation.
type MoveResizeCall struct {
	X, Y, Width, Height int
}

// NewMockHost creates a mock with no-op defaults and empty resource values.
func NewMockHost() *MockHost {
	return &MockHost{
		FontResourceFunc: func(context.Context, fontspec.Role) (string, error) {
			return "", nil
		},
		SetFontResourceFunc: func(context.Context, fontspec.Role, string) error {
			return nil
		},
		SendEscapeFunc: func(context.Context, string) error {
			return nil
		},
		MoveResizeFunc: func(context.Context, int, int, int, int) error {
			return nil
		},
	}
}

// FontResource implements port.Host.
func (m *MockHost) FontResource(ctx context.Context, role fontspec.Role) (string, error) {
	m.FontResourceCalls = append(m.FontResourceCalls, role)
	return m.FontResourceFunc(ctx, role)
}

// SetFontResource implements port.Host.
func (m *MockHost) SetFontResource(ctx context.Context, role fontspec.Role, value string) error {
	m.SetCalls = append(m.SetCalls, SetFontResourceCall{Role: role, Value: value})
	return m.SetFontResourceFunc(ctx, role, value)
}

// SendEscape implements port.Host.
func (m *MockHost) SendEscape(ctx context.Context, seq string) error {
	m.Escapes = append(m.Escapes, seq)
	return m.SendEscapeFunc(ctx, seq)
}

// MoveResize implements port.Host.
func (m *MockHost) MoveResize(ctx context.Context, x, y, width, height int) error {
	m.MoveResizeCalls = append(m.MoveResizeCalls, MoveResizeCall{X: x, Y: y, Width: width, Height: height})
	return m.MoveResizeFunc(ctx, x, y, width, height)
}
