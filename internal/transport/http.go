package transport

import (
	"errors"
	"net"

	"httpintake/internal/config"
	"httpintake/internal/registry"

	"go.uber.org/zap"
)

type httpServer struct {
	handler *httpHandler
	port    string
	logger  *zap.Logger
}

func NewHTTPServer(cfg config.Config, connRegistry registry.Registry, logger *zap.Logger) Transport {
	return &httpServer{
		handler: newHTTPHandler(cfg, connRegistry, logger),
		port:    cfg.HTTPPort(),
		logger:  logger,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ":"+ht.port)
}

func (ht *httpServer) Serve(listener net.Listener) error {
	ht.logger.Info("HTTP server is starting", zap.String("addr", listener.Addr().String()))
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			ht.logger.Warn("Error accepting connection", zap.Error(err))
			continue
		}

		go ht.handler.handler(conn)
	}
}
