package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"renderblocks/config"
)

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir         string
	sessionFile *os.File

	sessionHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	sessionPath := filepath.Join(dir, "session.csv")
	f, err := os.Create(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("creating session.csv: %w", err)
	}
	om.sessionFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteStats writes a window stats record to session.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.sessionHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
		om.sessionHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.sessionFile != nil {
		return om.sessionFile.Close()
	}
	return nil
}
