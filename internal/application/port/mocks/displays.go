package mocks

import (
	"context"

	"github.com/bnema/fontsized/internal/domain/display"
)

// MockDisplayEnumerator is a test double for port.DisplayEnumerator.
type MockDisplayEnumerator struct {
	OutputsFunc func(ctx context.Context) ([]display.Output, error)

	OutputsCalls int
}

// NewMockDisplayEnumerator creates a mock that enumerates no outputs.
func NewMockDisplayEnumerator() *MockDisplayEnumerator {
	return &MockDisplayEnumerator{
		OutputsFunc: func(context.Context) ([]display.Output, error) {
			return nil, nil
		},
	}
}

// Outputs implements port.DisplayEnumerator.
func (m *MockDisplayEnumerator) Outputs(ctx context.Context) ([]display.Output, error) {
	m.OutputsCalls++
	return m.OutputsFunc(ctx)
}
