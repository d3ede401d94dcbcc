package detector

import (
	"fmt"
	"sync"
)

// SkinDetector is the production Detector: classify pixels by skin color,
// denoise the mask, extract the largest blob, and measure its features.
// All intermediate buffers (mask, blob) are scoped to one Detect call.
type SkinDetector struct {
	cfg Config
	mu  sync.RWMutex
}

// NewSkinDetector creates a SkinDetector with the given thresholds.
func NewSkinDetector(cfg Config) (*SkinDetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detector config: %w", err)
	}
	return &SkinDetector{cfg: cfg}, nil
}

// Detect runs the full frame-to-features pipeline on one frame.
// A frame with no blob at least BlobMinSize pixels large yields (nil, nil):
// the size gate is a hard cutoff, not a confidence penalty.
func (d *SkinDetector) Detect(frame *Frame) (*FeatureSet, error) {
	if frame.Empty() {
		return nil, nil
	}

	cfg := d.Config()

	mask := Classify(frame, cfg)
	mask = Denoise(mask)

	blob := ExtractLargestBlob(mask)
	if blob.Size < cfg.BlobMinSize {
		return nil, nil
	}

	return ComputeFeatures(blob, mask.Width), nil
}

// Config returns the current thresholds.
func (d *SkinDetector) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.cfg
}

// SetConfig swaps in new thresholds, validating them first.
func (d *SkinDetector) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid detector config: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg = cfg
	return nil
}

// Close is a no-op; the skin detector holds no external resources.
func (d *SkinDetector) Close() error {
	return nil
}
