package control

import "sync"

// MockStore is a mock implementation of the ControlStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	AddControlFunc  func(c Control) (Control, error)
	GetControlFunc  func(id int64) (Control, error)
	LastControlFunc func(league string) (Control, error)

	GetControlCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetControlCalls = nil
}

func (m *MockStore) AddControl(c Control) (Control, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddControlFunc != nil {
		return m.AddControlFunc(c)
	}
	return c, nil
}

func (m *MockStore) GetControl(id int64) (Control, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetControlCalls = append(m.GetControlCalls, id)
	if m.GetControlFunc != nil {
		return m.GetControlFunc(id)
	}
	return Control{ID: id}, nil
}

func (m *MockStore) LastControl(league string) (Control, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LastControlFunc != nil {
		return m.LastControlFunc(league)
	}
	return Control{}, ErrNotFound
}
