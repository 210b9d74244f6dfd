package bootstrap

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"httpintake/internal/config"
	"httpintake/internal/registry"
	"httpintake/internal/transport"
	"httpintake/internal/version"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Config       config.Config
	Logger       *zap.Logger
	ConnRegistry registry.Registry
	Server       transport.Transport
	ErrChan      chan error
	SignalChan   chan os.Signal
}

func New(config config.Config, logger *zap.Logger) (*Bootstrap, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	connRegistry := registry.NewRegistry()

	return &Bootstrap{
		Config:       config,
		Logger:       logger,
		ConnRegistry: connRegistry,
		Server:       transport.NewHTTPServer(config, connRegistry, logger),
		ErrChan:      make(chan error, 5),
		SignalChan:   make(chan os.Signal, 1),
	}, nil
}

func startHTTPServer(server transport.Transport, ln net.Listener, errChan chan<- error) {
	if err := server.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, logger *zap.Logger, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	logger.Info("Starting pprof server", zap.String("url", "http://"+pprofAddr+"/debug/pprof/"))
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %w", err)
	}
}

// Run serves until a signal arrives on SignalChan or a service fails.
func (b *Bootstrap) Run() error {
	ln, err := b.Server.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	defer func() {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			b.Logger.Warn("Failed to close listener", zap.Error(err))
		}
	}()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	go startHTTPServer(b.Server, ln, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.Logger, b.ErrChan)
	}

	b.Logger.Info("All services started successfully",
		zap.String("version", version.GetShortVersion()),
		zap.String("addr", ln.Addr().String()),
	)

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Info("Received signal, initiating graceful shutdown",
			zap.String("signal", sig.String()),
			zap.Int("open_connections", b.ConnRegistry.Len()),
		)
		if err = b.ConnRegistry.CloseAll(); err != nil {
			b.Logger.Warn("Failed to close some connections", zap.Error(err))
		}
		return nil
	}
}
