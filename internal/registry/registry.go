package registry

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
)

type Key = string

// Registry tracks the connections currently being served so they can be
// closed together on shutdown.
type Registry interface {
	Get(key Key) (conn net.Conn, err error)
	Register(key Key, conn net.Conn) (success bool)
	Remove(key Key)
	Len() int
	CloseAll() error
}

type registry struct {
	mu    sync.RWMutex
	conns map[Key]net.Conn
}

var (
	ErrConnNotFound = fmt.Errorf("connection not found")
)

func NewRegistry() Registry {
	return &registry{
		conns: make(map[Key]net.Conn),
	}
}

func (r *registry) Get(key Key) (conn net.Conn, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[key]
	if !ok {
		return nil, ErrConnNotFound
	}
	return conn, nil
}

func (r *registry) Register(key Key, conn net.Conn) (success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conns[key]; exists {
		return false
	}
	r.conns[key] = conn
	return true
}

func (r *registry) Remove(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, key)
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}

// CloseAll closes every registered connection and empties the registry.
// Connections that were already closed are not reported.
func (r *registry) CloseAll() error {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[Key]net.Conn)
	r.mu.Unlock()

	var errs []error
	for key, conn := range conns {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.ErrClosedPipe) {
			errs = append(errs, fmt.Errorf("close %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
