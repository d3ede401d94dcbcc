package detector

import (
	"strings"
	"testing"
)

func TestClassify_SkinPixel(t *testing.T) {
	frame := NewFrame(1, 1)
	// A typical skin tone: hue ~34, saturation ~0.53, value ~0.88, inside
	// the normal preset ranges.
	frame.SetRGB(0, 0, 224, 172, 105)

	mask := Classify(frame, DefaultConfig())

	if mask.At(0, 0) != 1 {
		t.Error("skin-tone pixel should classify as foreground")
	}
}

func TestClassify_BackgroundPixels(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{name: "black", r: 0, g: 0, b: 0},
		{name: "dark blue", r: 30, g: 30, b: 60},
		{name: "saturated green", r: 0, g: 255, b: 0},
		{name: "white", r: 255, g: 255, b: 255},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := NewFrame(1, 1)
			frame.SetRGB(0, 0, tt.r, tt.g, tt.b)

			mask := Classify(frame, cfg)

			if mask.At(0, 0) != 0 {
				t.Errorf("(%d,%d,%d) should classify as background", tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestClassify_DegenerateFrame(t *testing.T) {
	// Classification is total: an all-black frame yields an all-background
	// mask, never an error.
	frame := NewFrame(8, 8)

	mask := Classify(frame, DefaultConfig())

	for i, bit := range mask.Bits {
		if bit != 0 {
			t.Fatalf("bit %d = 1, want all background for black frame", i)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "inverted hue range",
			mutate:  func(c *Config) { c.SkinLower.H = 60; c.SkinUpper.H = 50 },
			wantErr: "hue range inverted",
		},
		{
			name:    "inverted saturation range",
			mutate:  func(c *Config) { c.SkinLower.S = 0.9 },
			wantErr: "saturation range inverted",
		},
		{
			name:    "inverted value range",
			mutate:  func(c *Config) { c.SkinUpper.V = 0.1 },
			wantErr: "value range inverted",
		},
		{
			name:    "hue out of bounds",
			mutate:  func(c *Config) { c.SkinUpper.H = 400 },
			wantErr: "hue bounds",
		},
		{
			name:    "zero blob min size",
			mutate:  func(c *Config) { c.BlobMinSize = 0 },
			wantErr: "blob min size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPresetConfig(t *testing.T) {
	for _, name := range []string{PresetBright, PresetNormal, PresetDim} {
		t.Run(name, func(t *testing.T) {
			cfg, err := PresetConfig(name)
			if err != nil {
				t.Fatalf("PresetConfig(%q) error = %v", name, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q is not valid: %v", name, err)
			}
		})
	}

	normal, _ := PresetConfig(PresetNormal)
	bright, _ := PresetConfig(PresetBright)
	dim, _ := PresetConfig(PresetDim)

	if bright.SkinLower.V <= normal.SkinLower.V {
		t.Error("bright preset should narrow the value range upward")
	}
	if dim.SkinLower.S >= normal.SkinLower.S {
		t.Error("dim preset should widen the saturation range")
	}
	if dim.BlobMinSize >= normal.BlobMinSize {
		t.Error("dim preset should lower the minimum blob size")
	}

	if _, err := PresetConfig("midnight"); err == nil {
		t.Error("unknown preset should return an error")
	}
}
