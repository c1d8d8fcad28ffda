package storage

import (
	"encoding/json"
	"fmt"
)

// MockStorage keeps the stored values in memory, for tests.
type MockStorage struct {
	Elements map[Key]interface{}
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key]interface{})}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.Elements[k] = value
	return nil
}

func (m *MockStorage) Load(k Key, value interface{}) error {
	v, ok := m.Elements[k]
	if !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	// round trip through json to fill in the given value
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal '%v': %w", k, err)
	}
	return json.Unmarshal(b, value)
}
