package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/plotcheck/internal/monitoring"
)

// DefaultConfigPath is the path to the canonical comparison defaults file.
const DefaultConfigPath = "config/compare.defaults.json"

// Defaults used when a field is absent.
const (
	DefaultMaxULP         = 5
	DefaultLineTolerance  = 1e-4
	DefaultMarkerDecimals = 6
	DefaultCaptionBand    = 0.1
)

// CompareConfig tunes how extracted plot data is compared. Every field is
// optional; the Get* methods fall back to the defaults above.
type CompareConfig struct {
	// MaxULP is the units-in-last-place distance accepted when no
	// tolerance is given.
	MaxULP *int `json:"max_ulp,omitempty"`

	// LineTolerance is the absolute slack on slope, intercept and x-extent
	// when matching lines.
	LineTolerance *float64 `json:"line_tolerance,omitempty"`

	// MarkerDecimals is the precision used when comparing points ordered
	// by marker size.
	MarkerDecimals *int `json:"marker_decimals,omitempty"`

	// CaptionBand is the height, in figure fractions, of the band below an
	// Axes searched for a caption.
	CaptionBand *float64 `json:"caption_band,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyCompareConfig returns a CompareConfig with every field unset.
func EmptyCompareConfig() *CompareConfig {
	return &CompareConfig{}
}

// DefaultCompareConfig returns a CompareConfig with every field set to its
// default.
func DefaultCompareConfig() *CompareConfig {
	return &CompareConfig{
		MaxULP:         ptrInt(DefaultMaxULP),
		LineTolerance:  ptrFloat64(DefaultLineTolerance),
		MarkerDecimals: ptrInt(DefaultMarkerDecimals),
		CaptionBand:    ptrFloat64(DefaultCaptionBand),
	}
}

// LoadCompareConfig loads a CompareConfig from a JSON file. Fields missing
// from the file keep their defaults.
func LoadCompareConfig(path string) (*CompareConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 64 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyCompareConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	monitoring.Logf("loaded compare config from %s (max_ulp=%d line_tolerance=%g)",
		cleanPath, cfg.GetMaxULP(), cfg.GetLineTolerance())
	return cfg, nil
}

// LoadDefaultConfig loads DefaultConfigPath from the current directory or
// one of its parents.
func LoadDefaultConfig() (*CompareConfig, error) {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadCompareConfig(path)
	}
	return nil, fmt.Errorf("cannot find %s in the current directory or its parents", DefaultConfigPath)
}

// Validate checks that the configured values are usable.
func (c *CompareConfig) Validate() error {
	if c.MaxULP != nil && *c.MaxULP < 0 {
		return fmt.Errorf("max_ulp must be non-negative, got %d", *c.MaxULP)
	}
	if c.LineTolerance != nil && *c.LineTolerance < 0 {
		return fmt.Errorf("line_tolerance must be non-negative, got %g", *c.LineTolerance)
	}
	if c.MarkerDecimals != nil && (*c.MarkerDecimals < 0 || *c.MarkerDecimals > 15) {
		return fmt.Errorf("marker_decimals must be between 0 and 15, got %d", *c.MarkerDecimals)
	}
	if c.CaptionBand != nil && (*c.CaptionBand <= 0 || *c.CaptionBand > 1) {
		return fmt.Errorf("caption_band must be in (0, 1], got %g", *c.CaptionBand)
	}
	return nil
}

// GetMaxULP returns the max_ulp value or the default.
func (c *CompareConfig) GetMaxULP() uint {
	if c == nil || c.MaxULP == nil {
		return DefaultMaxULP
	}
	return uint(*c.MaxULP)
}

// GetLineTolerance returns the line_tolerance value or the default.
func (c *CompareConfig) GetLineTolerance() float64 {
	if c == nil || c.LineTolerance == nil {
		return DefaultLineTolerance
	}
	return *c.LineTolerance
}

// GetMarkerDecimals returns the marker_decimals value or the default.
func (c *CompareConfig) GetMarkerDecimals() int {
	if c == nil || c.MarkerDecimals == nil {
		return DefaultMarkerDecimals
	}
	return *c.MarkerDecimals
}

// GetCaptionBand returns the caption_band value or the default.
func (c *CompareConfig) GetCaptionBand() float64 {
	if c == nil || c.CaptionBand == nil {
		return DefaultCaptionBand
	}
	return *c.CaptionBand
}
