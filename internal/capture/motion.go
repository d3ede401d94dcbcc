package capture

import (
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ayusman/mudra/internal/detector"
)

// Motion detection constants.
const (
	// BlurRadius is the Gaussian blur radius used to suppress sensor noise
	// before differencing.
	BlurRadius = 3.0
	// DiffThreshold is the per-pixel luminance delta that counts as change.
	DiffThreshold = 25
)

// MotionDetector detects motion between consecutive frames using blurred
// grayscale frame differencing. It gates the pipeline's idle/active frame
// rate; it is not part of the recognition pipeline itself.
type MotionDetector struct {
	threshold   float64
	prev        []uint8
	width       int
	height      int
	initialized bool
	mu          sync.Mutex
}

// NewMotionDetector creates a new MotionDetector with the given threshold.
// The threshold is the percentage of pixels that must change to detect
// motion. For example, a threshold of 1.0 means 1% of pixels must change.
func NewMotionDetector(threshold float64) *MotionDetector {
	return &MotionDetector{threshold: threshold}
}

// Detect analyzes a frame for motion compared to the previous frame.
// Returns whether motion was detected and the percentage of pixels that
// changed. The first frame only establishes the baseline.
func (m *MotionDetector) Detect(frame *detector.Frame) (bool, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if frame.Empty() {
		return false, 0
	}

	luma := blurredLuma(frame)

	if !m.initialized || m.width != frame.Width || m.height != frame.Height {
		m.prev = luma
		m.width = frame.Width
		m.height = frame.Height
		m.initialized = true
		return false, 0
	}

	changed := 0
	for i := range luma {
		d := int(luma[i]) - int(m.prev[i])
		if d < 0 {
			d = -d
		}
		if d > DiffThreshold {
			changed++
		}
	}

	changePercent := float64(changed) / float64(len(luma)) * 100.0
	m.prev = luma

	return changePercent > m.threshold, changePercent
}

// blurredLuma converts a frame to blurred grayscale and returns one
// luminance byte per pixel.
func blurredLuma(frame *detector.Frame) []uint8 {
	gray := effect.Grayscale(frame.ToImage())
	blurred := blur.Gaussian(gray, BlurRadius)

	luma := make([]uint8, frame.Width*frame.Height)
	for i := range luma {
		// Grayscale output has equal R, G, B; read the red channel.
		luma[i] = blurred.Pix[i*4]
	}
	return luma
}

// Reset clears the motion detector state, allowing it to be reused with a
// new baseline frame.
func (m *MotionDetector) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prev = nil
	m.initialized = false
}

// SetThreshold sets the motion detection threshold.
// Values less than or equal to 0 are ignored.
func (m *MotionDetector) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.threshold = threshold
}
