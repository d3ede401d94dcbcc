// Package capture provides camera frame acquisition for the Mudra hand sign
// recognition system. Frames come off the device through GoCV (OpenCV) and
// are handed to the pipeline as plain RGB buffers at a reduced processing
// resolution.
package capture

import (
	"errors"
	"sync"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
)

// Default camera settings.
const (
	DefaultFPS    = 5
	CaptureWidth  = 640
	CaptureHeight = 480

	// ProcWidth and ProcHeight are the resolution frames are downscaled to
	// before entering the pipeline. The pipeline cost is linear in frame
	// area, so this bounds the per-tick work.
	ProcWidth  = 320
	ProcHeight = 240
)

// ErrCameraNotOpen is returned when trying to read from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*detector.Frame, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// cameraImpl manages video capture from a camera device using GoCV.
type cameraImpl struct {
	deviceID int
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	running  bool
	fps      int
}

// NewCamera creates a new Camera with the given device ID.
// The default FPS is 5 for performance reasons.
func NewCamera(deviceID int) Camera {
	return &cameraImpl{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// Open opens the camera for capturing frames.
// It sets the capture resolution to 640x480 for performance.
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, CaptureWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, CaptureHeight)
	capture.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = capture
	c.running = true

	return nil
}

// Close closes the camera and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false

	return err
}

// ReadFrame reads a single frame from the camera, downscaled to the
// processing resolution. The returned frame is owned by the caller.
func (c *cameraImpl) ReadFrame() (*detector.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	defer mat.Close()

	if ok := c.capture.Read(&mat); !ok {
		return nil, errors.New("failed to read frame from camera")
	}
	if mat.Empty() {
		return nil, errors.New("captured frame is empty")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	scaled := imaging.Resize(img, ProcWidth, ProcHeight, imaging.Linear)
	return detector.FrameFromImage(scaled), nil
}

// SetFPS sets the frames per second for capture.
// Values less than or equal to 0 are ignored.
func (c *cameraImpl) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fps = fps

	if c.capture != nil {
		c.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current frames per second setting.
func (c *cameraImpl) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fps
}

// IsOpen returns true if the camera is currently open and running.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}
