package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"httpintake/internal/http/header"

	"github.com/joho/godotenv"
)

const defaultAllowedMethods = "GET,HEAD,POST,PUT,PATCH,DELETE,OPTIONS"

type config struct {
	httpPort string

	bufferSize  int
	readTimeout time.Duration

	limits         header.Limits
	allowedMethods []string

	logLevel string
	logJSON  bool

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	httpPort := getenv("HTTP_PORT", "8080")
	if _, err := strconv.ParseUint(httpPort, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT %q", httpPort)
	}

	bufferSize := parseBufferSize()

	readTimeout, err := parseReadTimeout()
	if err != nil {
		return nil, err
	}

	limits, err := parseLimits()
	if err != nil {
		return nil, err
	}

	methods, err := parseAllowedMethods()
	if err != nil {
		return nil, err
	}

	logLevel := strings.ToLower(getenv("LOG_LEVEL", "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL value")
	}

	return &config{
		httpPort:       httpPort,
		bufferSize:     bufferSize,
		readTimeout:    readTimeout,
		limits:         limits,
		allowedMethods: methods,
		logLevel:       logLevel,
		logJSON:        getenvBool("LOG_JSON", false),
		pprofEnabled:   getenvBool("PPROF_ENABLED", false),
		pprofPort:      getenv("PPROF_PORT", "6060"),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", "4096")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 512 || size > 1048576 {
		log.Println("Invalid BUFFER_SIZE, falling back to 4096")
		return 4096
	}
	return size
}

func parseReadTimeout() (time.Duration, error) {
	raw := getenv("READ_TIMEOUT", "30s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("READ_TIMEOUT must be positive")
	}
	return d, nil
}

func parseLimits() (header.Limits, error) {
	var limits header.Limits
	var err error

	if limits.MaxValueSize, err = getenvInt("MAX_HEADER_VALUE_SIZE", header.DefaultMaxValueSize); err != nil {
		return header.Limits{}, err
	}
	if limits.MaxBlockSize, err = getenvInt("MAX_HEADER_BLOCK_SIZE", header.DefaultMaxBlockSize); err != nil {
		return header.Limits{}, err
	}
	if limits.MaxFields, err = getenvInt("MAX_HEADER_FIELDS", header.DefaultMaxFields); err != nil {
		return header.Limits{}, err
	}
	if limits.MaxBodySize, err = getenvInt("MAX_BODY_SIZE", header.DefaultMaxBodySize); err != nil {
		return header.Limits{}, err
	}

	if limits.MaxValueSize > limits.MaxBlockSize {
		return header.Limits{}, fmt.Errorf("MAX_HEADER_VALUE_SIZE (%d) exceeds MAX_HEADER_BLOCK_SIZE (%d)", limits.MaxValueSize, limits.MaxBlockSize)
	}
	return limits, nil
}

func parseAllowedMethods() ([]string, error) {
	raw := getenv("ALLOWED_METHODS", defaultAllowedMethods)

	var methods []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if !header.IsToken(m) || strings.ToUpper(m) != m {
			return nil, fmt.Errorf("invalid method %q in ALLOWED_METHODS", m)
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("ALLOWED_METHODS is empty")
	}
	return methods, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

func getenvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, val)
	}
	return n, nil
}
