package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"httpintake/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := newMockConfig()
	srv := NewHTTPServer(cfg, registry.NewRegistry(), zap.NewNop())
	assert.NotNil(t, srv)

	httpSrv, ok := srv.(*httpServer)
	assert.True(t, ok)
	assert.Equal(t, "0", httpSrv.port)
	assert.Equal(t, 4096, httpSrv.handler.bufferSize)
	assert.Equal(t, []string{"GET", "POST"}, httpSrv.handler.allowedMethods)
}

func TestHTTPServer_Listen(t *testing.T) {
	srv := NewHTTPServer(newMockConfig(), registry.NewRegistry(), zap.NewNop())

	listener, err := srv.Listen()
	assert.NoError(t, err)
	assert.NotNil(t, listener)
	listener.Close()
}

func TestHTTPServer_Serve(t *testing.T) {
	srv := NewHTTPServer(newMockConfig(), registry.NewRegistry(), zaptest.NewLogger(t))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		listener.Close()
	}()

	err = srv.Serve(listener)
	assert.True(t, errors.Is(err, net.ErrClosed))
}

func TestHTTPServer_Serve_AcceptError(t *testing.T) {
	srv := NewHTTPServer(newMockConfig(), registry.NewRegistry(), zap.NewNop())

	ml := new(mockListener)
	ml.On("Addr").Return(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080})
	ml.On("Accept").Return(nil, errors.New("accept error")).Once()
	ml.On("Accept").Return(nil, net.ErrClosed).Once()

	err := srv.Serve(ml)
	assert.True(t, errors.Is(err, net.ErrClosed))
	ml.AssertExpectations(t)
}

func TestHTTPServer_Serve_Success(t *testing.T) {
	srv := NewHTTPServer(newMockConfig(), registry.NewRegistry(), zap.NewNop())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	go func() {
		_ = srv.Serve(listener)
	}()

	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("GET /ping HTTP/1.1\r\nHost: localhost\r\nConnection: close\r\n\r\n"))
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "127.0.0.1", resp.Header.Get("X-Client-Addr"))
	assert.Contains(t, string(body), "path: /ping\n")
}
