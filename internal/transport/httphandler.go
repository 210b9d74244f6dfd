package transport

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"httpintake/internal/config"
	"httpintake/internal/http/header"
	"httpintake/internal/http/httperror"
	"httpintake/internal/http/multipart"
	"httpintake/internal/http/request"
	"httpintake/internal/http/stream"
	"httpintake/internal/middleware"
	"httpintake/internal/random"
	"httpintake/internal/registry"

	"go.uber.org/zap"
)

type httpHandler struct {
	limits         header.Limits
	bufferSize     int
	readTimeout    time.Duration
	allowedMethods []string
	random         random.Random
	connRegistry   registry.Registry
	logger         *zap.Logger
}

func newHTTPHandler(cfg config.Config, connRegistry registry.Registry, logger *zap.Logger) *httpHandler {
	return &httpHandler{
		limits:         cfg.Limits(),
		bufferSize:     cfg.BufferSize(),
		readTimeout:    cfg.ReadTimeout(),
		allowedMethods: cfg.AllowedMethods(),
		random:         random.New(),
		connRegistry:   connRegistry,
		logger:         logger,
	}
}

func (hh *httpHandler) handler(conn net.Conn) {
	defer hh.closeConnection(conn)

	connID := hh.random.RequestID()
	if !hh.connRegistry.Register(connID, conn) {
		hh.logger.Warn("Connection id already in use", zap.String("conn_id", connID))
		return
	}
	defer hh.connRegistry.Remove(connID)

	hw := stream.New(conn, hh.readTimeout)
	hh.setupMiddlewares(hw)

	parser := request.NewParser(hh.limits, hh.bufferSize)
	for {
		log := hh.logger.With(
			zap.String("conn_id", connID),
			zap.String("request_id", hh.random.RequestID()),
			zap.String("remote_addr", conn.RemoteAddr().String()),
		)

		req, err := parser.Next(hw)
		if err != nil {
			hh.handleParseError(hw, log, err)
			return
		}

		if !hh.serve(hw, log, req) {
			return
		}
	}
}

// serve answers one request and reports whether the connection should be
// kept open for the next one.
func (hh *httpHandler) serve(hw stream.HTTP, log *zap.Logger, req *request.Request) bool {
	log = log.With(zap.String("method", req.Method()), zap.String("path", req.Path()))

	if err := hw.ApplyRequestMiddlewares(req); err != nil {
		var rejection *middleware.Rejection
		if errors.As(err, &rejection) {
			log.Info("Request rejected", zap.Int("status", rejection.Status), zap.String("reason", rejection.Reason))
			hh.writeError(hw, log, rejection.Status, rejection.Reason)
			return false
		}
		log.Error("Error applying request middlewares", zap.Error(err))
		hh.writeError(hw, log, http.StatusInternalServerError, "internal error")
		return false
	}

	summary, err := summarize(req)
	if err != nil {
		log.Info("Request body could not be decoded", zap.Error(err))
		hh.writeError(hw, log, http.StatusBadRequest, err.Error())
		return false
	}

	keepAlive := req.KeepAlive()
	if err = hw.WriteResponse(http.StatusOK, []byte(summary), keepAlive); err != nil {
		log.Warn("Failed to write response", zap.Error(err))
		return false
	}
	log.Info("Request served", zap.Int("body_size", req.ContentLength()), zap.Bool("keep_alive", keepAlive))
	return keepAlive
}

func (hh *httpHandler) handleParseError(hw stream.HTTP, log *zap.Logger, err error) {
	status, ok := statusFor(err)
	if !ok {
		log.Debug("Connection ended", zap.Error(err))
		return
	}
	log.Info("Malformed request", zap.Int("status", status), zap.Error(err))
	hh.writeError(hw, log, status, httperror.KindOf(err).String())
}

func (hh *httpHandler) writeError(hw stream.HTTP, log *zap.Logger, status int, reason string) {
	if err := hw.WriteResponse(status, []byte(reason+"\n"), false); err != nil {
		log.Warn("Failed to write error response", zap.Int("status", status), zap.Error(err))
	}
}

// statusFor maps a parse failure to the status sent back. ok is false
// when the peer is gone or the failure came from the socket itself.
func statusFor(err error) (int, bool) {
	switch httperror.KindOf(err) {
	case httperror.KindRequestLine, httperror.KindHeaderName, httperror.KindDecode:
		return http.StatusBadRequest, true
	case httperror.KindHeaderValue:
		return http.StatusRequestHeaderFieldsTooLarge, true
	case httperror.KindUnsupportedEncoding:
		return http.StatusNotImplemented, true
	default:
		return 0, false
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		hh.logger.Warn("Error closing connection", zap.Error(err))
	}
}

func (hh *httpHandler) setupMiddlewares(hw stream.HTTP) {
	hw.UseRequestMiddleware(middleware.NewHostRequired())
	hw.UseRequestMiddleware(middleware.NewAllowedMethods(hh.allowedMethods))

	hw.UseResponseMiddleware(middleware.NewServerName())
	if _, ok := hw.RemoteAddr().(*net.TCPAddr); ok {
		hw.UseResponseMiddleware(middleware.NewClientAddr(hw.RemoteAddr()))
	}
}

// summarize renders the plain-text reply body describing req.
func summarize(req *request.Request) (string, error) {
	parts := 0
	if req.ContentType() == multipart.ContentType {
		m, err := req.Multipart()
		if err != nil {
			return "", err
		}
		parts = m.Len()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "method: %s\n", req.Method())
	fmt.Fprintf(&sb, "path: %s\n", req.Path())
	fmt.Fprintf(&sb, "headers: %d\n", len(req.Headers()))
	fmt.Fprintf(&sb, "body: %d bytes\n", req.ContentLength())
	fmt.Fprintf(&sb, "form fields: %d\n", req.FormValues().Len())
	fmt.Fprintf(&sb, "parts: %d\n", parts)
	return sb.String(), nil
}
