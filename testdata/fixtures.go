// Package testdata provides synthetic camera frames for tests. Frames are
// built in code rather than loaded from disk so tests control the exact
// pixel values the pipeline sees.
package testdata

import (
	"github.com/ayusman/mudra/internal/detector"
)

// Skin is an RGB tone inside the default skin classification range.
var Skin = [3]uint8{224, 172, 105}

// Background is a dark RGB tone outside every preset's skin range.
var Background = [3]uint8{16, 16, 16}

// SolidFrame returns a frame filled with a single RGB color.
func SolidFrame(width, height int, r, g, b uint8) *detector.Frame {
	frame := detector.NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.SetRGB(x, y, r, g, b)
		}
	}
	return frame
}

// HandFrame returns a dark frame with a skin-toned rectangle covering
// [left, right] x [top, bottom], a rough stand-in for a hand in view.
func HandFrame(width, height, left, top, right, bottom int) *detector.Frame {
	frame := SolidFrame(width, height, Background[0], Background[1], Background[2])
	for y := top; y <= bottom && y < height; y++ {
		for x := left; x <= right && x < width; x++ {
			frame.SetRGB(x, y, Skin[0], Skin[1], Skin[2])
		}
	}
	return frame
}

// EmptyScene returns a sequence of identical background frames.
func EmptyScene(width, height, n int) []*detector.Frame {
	frames := make([]*detector.Frame, n)
	for i := range frames {
		frames[i] = SolidFrame(width, height, Background[0], Background[1], Background[2])
	}
	return frames
}
