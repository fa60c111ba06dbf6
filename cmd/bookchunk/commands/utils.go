// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Builds config, storage and logger from flags, and renders structured output
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/bookchunk/internal/config"
	"github.com/harper/bookchunk/internal/logging"
	"github.com/harper/bookchunk/internal/storage"
)

// env bundles what every command needs
type env struct {
	cfg    *config.Config
	store  *storage.Storage
	logger *log.Logger
}

// setup loads .env and configuration, then builds storage and a logger honoring --verbose/--quiet
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	logger.Debug("using data root", "root", store.Root())

	return &env{cfg: cfg, store: store, logger: logger}, nil
}

// parseIntArg parses a positional integer argument
func parseIntArg(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// success prints a confirmation line unless --quiet is set
func success(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Fprintf(w, "✓ "+format+"\n", args...)
}

// writeStructured renders v as JSON or YAML according to --format
func writeStructured(w io.Writer, v interface{}) error {
	switch outputFormat {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(w, "%s\n", data)
		return nil
	}
}
