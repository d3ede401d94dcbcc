// Package detector provides the frame-to-features pipeline for the Mudra
// hand sign recognition system. Every stage is a fixed classical image
// operation (pixel classification, neighborhood filtering, flood-fill blob
// extraction, geometric feature measurement) over a raw RGB buffer.
package detector

import "fmt"

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the feature set of the
	// detected hand. Returns nil if no hand is present in the frame.
	Detect(frame *Frame) (*FeatureSet, error)

	// Close releases any resources held by the detector.
	Close() error
}

// HSV is a point in hue/saturation/value space.
// Hue is in degrees [0, 360); saturation and value are in [0, 1].
type HSV struct {
	H float64
	S float64
	V float64
}

// Config holds the runtime-tunable thresholds for skin detection.
type Config struct {
	// SkinLower and SkinUpper bound the inclusive HSV range a pixel must
	// fall inside to count as skin.
	SkinLower HSV
	SkinUpper HSV

	// BlobMinSize is the minimum pixel count for a blob to be treated as a
	// hand. Smaller blobs yield no detection at all.
	BlobMinSize int
}

// Lighting preset names.
const (
	PresetBright = "bright"
	PresetNormal = "normal"
	PresetDim    = "dim"
)

// DefaultConfig returns the "normal" lighting preset.
func DefaultConfig() Config {
	return Config{
		SkinLower:   HSV{H: 0, S: 0.23, V: 0.35},
		SkinUpper:   HSV{H: 50, S: 0.68, V: 1.0},
		BlobMinSize: 800,
	}
}

// PresetConfig returns the thresholds for a named lighting preset.
// A bright room narrows the value range upward; a dim room widens the
// saturation range and lowers the minimum blob size.
func PresetConfig(name string) (Config, error) {
	switch name {
	case PresetNormal:
		return DefaultConfig(), nil
	case PresetBright:
		c := DefaultConfig()
		c.SkinLower.V = 0.45
		return c, nil
	case PresetDim:
		c := DefaultConfig()
		c.SkinLower.S = 0.15
		c.SkinLower.V = 0.25
		c.BlobMinSize = 500
		return c, nil
	default:
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
}

// Validate checks that the configuration is well formed. Malformed threshold
// ranges are rejected here, at load time, so the per-frame pipeline never has
// to deal with them.
func (c Config) Validate() error {
	if c.SkinLower.H > c.SkinUpper.H {
		return fmt.Errorf("hue range inverted: %.1f > %.1f", c.SkinLower.H, c.SkinUpper.H)
	}
	if c.SkinLower.S > c.SkinUpper.S {
		return fmt.Errorf("saturation range inverted: %.2f > %.2f", c.SkinLower.S, c.SkinUpper.S)
	}
	if c.SkinLower.V > c.SkinUpper.V {
		return fmt.Errorf("value range inverted: %.2f > %.2f", c.SkinLower.V, c.SkinUpper.V)
	}
	if c.SkinLower.H < 0 || c.SkinUpper.H >= 360 {
		return fmt.Errorf("hue bounds outside [0, 360): %.1f..%.1f", c.SkinLower.H, c.SkinUpper.H)
	}
	if c.SkinLower.S < 0 || c.SkinUpper.S > 1 {
		return fmt.Errorf("saturation bounds outside [0, 1]: %.2f..%.2f", c.SkinLower.S, c.SkinUpper.S)
	}
	if c.SkinLower.V < 0 || c.SkinUpper.V > 1 {
		return fmt.Errorf("value bounds outside [0, 1]: %.2f..%.2f", c.SkinLower.V, c.SkinUpper.V)
	}
	if c.BlobMinSize <= 0 {
		return fmt.Errorf("blob min size must be positive, got %d", c.BlobMinSize)
	}
	return nil
}
