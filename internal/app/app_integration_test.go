package app

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/testdata"
)

// TestApp_PipelineLoop drives the full frame loop off a mock camera: the
// loop starts idle, wakes on motion, and processes frames until a symbol is
// accepted.
func TestApp_PipelineLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pipeline loop test")
	}

	// Alternating dark and bright frames keep the motion gate open so the
	// loop switches to active mode and stays there.
	dark := testdata.SolidFrame(64, 48, 16, 16, 16)
	bright := testdata.SolidFrame(64, 48, 200, 200, 200)
	frames := []*detector.Frame{dark, bright, dark, bright}
	camera := capture.NewMockCamera(frames, true)

	a := New(Config{})
	a.SetCamera(camera)

	mock := detector.NewMockDetector()
	mock.SetFeatures(detector.OpenPalmFeatures())
	a.SetDetector(mock)
	a.SetEnabled(true)

	events := a.Events().Subscribe()
	defer a.Events().Unsubscribe(events)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	deadline := time.After(10 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type != EventSymbol {
				continue
			}
			if event.Symbol.Label != "Y" {
				t.Errorf("accepted label = %q, want Y", event.Symbol.Label)
			}
			if a.Sequence() == "" {
				t.Error("symbol accepted but sequence is empty")
			}
			return
		case <-deadline:
			t.Fatal("no symbol accepted before the deadline")
		}
	}
}

// TestApp_PipelineLoopDisabled checks that a disabled app never processes
// frames even with motion in view.
func TestApp_PipelineLoopDisabled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pipeline loop test")
	}

	dark := testdata.SolidFrame(64, 48, 16, 16, 16)
	bright := testdata.SolidFrame(64, 48, 200, 200, 200)
	camera := capture.NewMockCamera([]*detector.Frame{dark, bright}, true)

	a := New(Config{})
	a.SetCamera(camera)

	mock := detector.NewMockDetector()
	mock.SetFeatures(detector.OpenPalmFeatures())
	a.SetDetector(mock)

	events := a.Events().Subscribe()
	defer a.Events().Unsubscribe(events)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	time.Sleep(time.Second)
	if len(events) != 0 {
		t.Errorf("disabled app published %d events", len(events))
	}
	if a.Sequence() != "" {
		t.Errorf("disabled app accumulated %q", a.Sequence())
	}
}
