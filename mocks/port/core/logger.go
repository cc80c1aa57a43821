package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/port/core"
)

// MockLogger is a mock implementation of the core.Logger interface
type MockLogger struct {
	mock.Mock
}

// SetLevel provides a mock function
func (m *MockLogger) SetLevel(level core.LogLevel) {
	m.Called(level)
}

// GetLevel provides a mock function
func (m *MockLogger) GetLevel() core.LogLevel {
	args := m.Called()
	return args.Get(0).(core.LogLevel)
}

// Debug provides a mock function
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info provides a mock function
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn provides a mock function
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error provides a mock function
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush provides a mock function
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
