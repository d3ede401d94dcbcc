package detector

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Classify labels every frame pixel as skin (1) or background (0).
//
// Each pixel's RGB triple is converted to HSV and tested against three
// independent inclusive ranges, one per channel. A pixel is foreground only
// if all three tests pass. The operation is total: a degenerate frame simply
// classifies every pixel as background.
func Classify(frame *Frame, cfg Config) *Mask {
	mask := NewMask(frame.Width, frame.Height)
	i := 0
	for p := 0; p < len(frame.Pix); p += 3 {
		c := colorful.Color{
			R: float64(frame.Pix[p]) / 255.0,
			G: float64(frame.Pix[p+1]) / 255.0,
			B: float64(frame.Pix[p+2]) / 255.0,
		}
		h, s, v := c.Hsv()
		if inRange(h, cfg.SkinLower.H, cfg.SkinUpper.H) &&
			inRange(s, cfg.SkinLower.S, cfg.SkinUpper.S) &&
			inRange(v, cfg.SkinLower.V, cfg.SkinUpper.V) {
			mask.Bits[i] = 1
		}
		i++
	}
	return mask
}

func inRange(v, lower, upper float64) bool {
	return v >= lower && v <= upper
}
