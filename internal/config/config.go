package config

import (
	"time"

	"httpintake/internal/http/header"
)

type Config interface {
	HTTPPort() string

	BufferSize() int
	ReadTimeout() time.Duration

	Limits() header.Limits
	AllowedMethods() []string

	LogLevel() string
	LogJSON() bool

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPPort() string           { return c.httpPort }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) ReadTimeout() time.Duration { return c.readTimeout }
func (c *config) Limits() header.Limits      { return c.limits }
func (c *config) LogLevel() string           { return c.logLevel }
func (c *config) LogJSON() bool              { return c.logJSON }
func (c *config) PprofEnabled() bool         { return c.pprofEnabled }
func (c *config) PprofPort() string          { return c.pprofPort }

func (c *config) AllowedMethods() []string {
	return append([]string(nil), c.allowedMethods...)
}
