package transport

import (
	"net"
	"time"

	"httpintake/internal/http/header"

	"github.com/stretchr/testify/mock"
)

type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) HTTPPort() string           { return m.Called().String(0) }
func (m *MockConfig) BufferSize() int            { return m.Called().Int(0) }
func (m *MockConfig) ReadTimeout() time.Duration { return m.Called().Get(0).(time.Duration) }
func (m *MockConfig) Limits() header.Limits      { return m.Called().Get(0).(header.Limits) }
func (m *MockConfig) AllowedMethods() []string   { return m.Called().Get(0).([]string) }
func (m *MockConfig) LogLevel() string           { return m.Called().String(0) }
func (m *MockConfig) LogJSON() bool              { return m.Called().Bool(0) }
func (m *MockConfig) PprofEnabled() bool         { return m.Called().Bool(0) }
func (m *MockConfig) PprofPort() string          { return m.Called().String(0) }

func newMockConfig() *MockConfig {
	m := &MockConfig{}
	m.On("HTTPPort").Return("0")
	m.On("BufferSize").Return(4096)
	m.On("ReadTimeout").Return(2 * time.Second)
	m.On("Limits").Return(header.DefaultLimits())
	m.On("AllowedMethods").Return([]string{"GET", "POST"})
	return m
}

type mockListener struct {
	mock.Mock
}

func (m *mockListener) Accept() (net.Conn, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(net.Conn), args.Error(1)
}

func (m *mockListener) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockListener) Addr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}
