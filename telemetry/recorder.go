// Package telemetry records per-frame animation samples to CSV for tuning
// easing parameters offline.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/spingrid/config"
)

// FrameSample is one recorded animation frame.
type FrameSample struct {
	Tick     int32   `csv:"tick"`
	TimeSec  float64 `csv:"time_sec"`
	AngleDeg float64 `csv:"angle_deg"`
	Scale    float64 `csv:"scale"`
	Spinning bool    `csv:"spinning"`
}

// Recorder writes frame samples to frames.csv in an output directory.
// A nil *Recorder is valid; all methods no-op on it.
type Recorder struct {
	dir       string
	frameFile *os.File

	headerWritten bool
}

// NewRecorder creates a recorder writing into dir.
// Returns nil if dir is empty (recording disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	framesPath := filepath.Join(dir, "frames.csv")
	f, err := os.Create(framesPath)
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &Recorder{dir: dir, frameFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML alongside the samples.
func (r *Recorder) WriteConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	configPath := filepath.Join(r.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteFrame appends one sample to frames.csv.
func (r *Recorder) WriteFrame(s FrameSample) error {
	if r == nil {
		return nil
	}

	records := []FrameSample{s}

	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.frameFile); err != nil {
			return fmt.Errorf("writing frame sample: %w", err)
		}
		r.headerWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, r.frameFile); err != nil {
			return fmt.Errorf("writing frame sample: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Close flushes and closes the output file.
func (r *Recorder) Close() error {
	if r == nil || r.frameFile == nil {
		return nil
	}
	return r.frameFile.Close()
}
