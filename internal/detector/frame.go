package detector

import (
	"image"
	"image/color"
)

// Frame is a rectangular buffer of 8-bit RGB pixels in row-major order.
// The pipeline treats frames as immutable inputs and never retains a
// reference past a single Detect call.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel: R, G, B
}

// NewFrame allocates a zeroed (all-black) frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// FrameFromImage copies an image into a new Frame, dropping alpha.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := NewFrame(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			f.Pix[i] = uint8(r >> 8)
			f.Pix[i+1] = uint8(g >> 8)
			f.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return f
}

// RGBAt returns the pixel at (x, y). Coordinates must be in bounds.
func (f *Frame) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// SetRGB sets the pixel at (x, y). Coordinates must be in bounds.
func (f *Frame) SetRGB(x, y int, r, g, b uint8) {
	i := (y*f.Width + x) * 3
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{Width: f.Width, Height: f.Height, Pix: make([]uint8, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// Empty reports whether the frame has no pixels.
func (f *Frame) Empty() bool {
	return f == nil || f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0
}

// ToImage converts the frame to an image.RGBA with full opacity.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGBAt(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Mask is a binary foreground/background labeling of one frame.
// Cells hold 0 (background) or 1 (foreground).
type Mask struct {
	Width  int
	Height int
	Bits   []uint8
}

// NewMask allocates an all-background mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]uint8, width*height),
	}
}

// At returns the label at (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.Bits[y*m.Width+x]
}

// Set stores a label at (x, y).
func (m *Mask) Set(x, y int, v uint8) {
	m.Bits[y*m.Width+x] = v
}
