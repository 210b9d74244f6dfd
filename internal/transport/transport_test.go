package transport

import (
	"testing"

	"httpintake/internal/registry"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTransportInterface(t *testing.T) {
	var _ Transport = (*httpServer)(nil)
	assert.NotNil(t, NewHTTPServer(newMockConfig(), registry.NewRegistry(), zap.NewNop()))
}
