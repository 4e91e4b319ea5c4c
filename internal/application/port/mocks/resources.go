package mocks

import "context"

// MockResourceStore is a test double for port.ResourceStore.
type MockResourceStore struct {
	LoadBaseFunc     func(ctx context.Context) error
	MergeFunc        func(ctx context.Context, lines []string) error
	RederiveBaseFunc func(ctx context.Context) error

	// Call tracking
	LoadBaseCalls     int
	MergeCalls        [][]string
	RederiveBaseCalls int
}

// NewMockResourceStore creates a mock whose operations all succeed.
func NewMockResourceStore() *MockResourceStore {
	return &MockResourceStore{
		LoadBaseFunc:     func(context.Context) error { return nil },
		MergeFunc:        func(context.Context, []string) error { return nil },
		RederiveBaseFunc: func(context.Context) error { return nil },
	}
}

// LoadBase implements port.ResourceStore.
func (m *MockResourceStore) LoadBase(ctx context.Context) error {
	m.LoadBaseCalls++
	return m.LoadBaseFunc(ctx)
}

// Merge implements port.ResourceStore.
func (m *MockResourceStore) Merge(ctx context.Context, lines []string) error {
	recorded := make([]string, len(lines))
	copy(recorded, lines)
	m.MergeCalls = append(m.MergeCalls, recorded)
	return m.MergeFunc(ctx, lines)
}

// RederiveBase implements port.ResourceStore.
func (m *MockResourceStore) RederiveBase(ctx context.Context) error {
	m.RederiveBaseCalls++
	return m.RederiveBaseFunc(ctx)
}
