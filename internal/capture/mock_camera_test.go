package capture

import (
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestMockCamera_Playback(t *testing.T) {
	frames := []*detector.Frame{
		solidFrame(8, 8, 1, 1, 1),
		solidFrame(8, 8, 2, 2, 2),
	}
	cam := NewMockCamera(frames, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame before Open: err = %v, want ErrCameraNotOpen", err)
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	first, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	if r, _, _ := first.RGBAt(0, 0); r != 1 {
		t.Errorf("first frame pixel = %d, want 1", r)
	}

	if _, err := cam.ReadFrame(); err != nil {
		t.Fatalf("second ReadFrame() error = %v", err)
	}

	// Non-looping playback runs out.
	if _, err := cam.ReadFrame(); err == nil {
		t.Error("expected error after frame sequence is exhausted")
	}
}

func TestMockCamera_Loop(t *testing.T) {
	cam := NewMockCamera([]*detector.Frame{solidFrame(4, 4, 9, 9, 9)}, true)
	cam.Open()

	for i := 0; i < 5; i++ {
		if _, err := cam.ReadFrame(); err != nil {
			t.Fatalf("looping ReadFrame() #%d error = %v", i, err)
		}
	}
}

func TestMockCamera_CloneIsolation(t *testing.T) {
	original := solidFrame(4, 4, 7, 7, 7)
	cam := NewMockCamera([]*detector.Frame{original}, true)
	cam.Open()

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	frame.SetRGB(0, 0, 99, 99, 99)

	if r, _, _ := original.RGBAt(0, 0); r != 7 {
		t.Error("mutating a returned frame must not affect the replay sequence")
	}
}
