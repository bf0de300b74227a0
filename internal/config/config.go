// Package config reads WarQuest settings from the environment, after an
// optional .env file has been loaded.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultRows     = 40
	DefaultCols     = 100
	DefaultLogFile  = "warquest.log"
	DefaultLogLevel = "info"
	DefaultSSHAddr  = ":2222"
	DefaultHostKey  = "warquest_host_key"
	defaultDataset  = "warquest"
)

// Config holds game configuration options.
type Config struct {
	// MapPath points at a map text file. Empty means the embedded map.
	MapPath  string
	Rows     int
	Cols     int
	LogFile  string
	LogLevel string

	SSHAddr string
	HostKey string
}

// LoadDotEnv loads .env files into the process environment. A missing file
// is reported but is not a problem for callers; variables may be set directly.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// FromEnv builds a Config from WARQUEST_* variables. Malformed values fall
// back to their defaults and are reported in the returned error, alongside
// a usable Config.
func FromEnv() (Config, error) {
	cfg := Config{
		MapPath:  os.Getenv("WARQUEST_MAP"),
		LogFile:  stringOr("WARQUEST_LOG_FILE", DefaultLogFile),
		LogLevel: stringOr("WARQUEST_LOG_LEVEL", DefaultLogLevel),
		SSHAddr:  stringOr("WARQUEST_SSH_ADDR", DefaultSSHAddr),
		HostKey:  stringOr("WARQUEST_HOST_KEY", DefaultHostKey),
	}

	var errs []error
	var err error
	if cfg.Rows, err = positiveIntOr("WARQUEST_ROWS", DefaultRows); err != nil {
		errs = append(errs, err)
	}
	if cfg.Cols, err = positiveIntOr("WARQUEST_COLS", DefaultCols); err != nil {
		errs = append(errs, err)
	}

	return cfg, errors.Join(errs...)
}

// ExportOTelEnv maps the Honeycomb variables onto the standard OTEL_*
// variables read by the exporter.
func ExportOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_WARQUEST_API_KEY")
	dataset := stringOr("HONEYCOMB_WARQUEST_DATASET", defaultDataset)
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

func stringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveIntOr(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return fallback, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}
