// internal/utils/clock.go
package utils

import (
	"sync"
	"time"
)

// SystemClock отдаёт реальное время с монотонной составляющей
type SystemClock struct{}

// NewSystemClock создаёт системные часы
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now возвращает текущее время
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock — управляемые часы для тестов и детерминированных прогонов
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock создаёт часы, остановленные на start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now возвращает текущее время часов
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set устанавливает время
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance сдвигает время вперёд на d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
