// Package app provides the main application logic for the Mudra hand sign
// recognition system: session lifecycle, the frame loop, and event fanout.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching
	// back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
}

// App orchestrates camera capture, hand detection, and symbol accumulation
// for one detection session at a time.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	skin     *detector.SkinDetector
	session  *gesture.Session
	hub      *Hub

	preset  string
	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}

	// busy enforces at-most-one-in-flight pipeline invocation. A frame
	// arriving while another is processing is dropped, never queued.
	busy atomic.Bool
}

// New creates a new App instance with the given configuration. The detector
// thresholds come from the persisted preset (falling back to "normal"), and
// the vocabulary from the store (falling back to the built-in lists).
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config: config,
		camera: capture.NewCamera(config.CameraID),
		motion: capture.NewMotionDetector(motionThreshold),
		hub:    NewHub(),
		preset: detector.PresetNormal,
	}

	if config.Store != nil {
		if name, err := config.Store.Settings().Get(store.SettingPreset); err == nil {
			a.preset = name
		}
	}

	cfg, err := detector.PresetConfig(a.preset)
	if err != nil {
		log.Printf("Unknown stored preset %q, falling back to normal", a.preset)
		a.preset = detector.PresetNormal
		cfg = detector.DefaultConfig()
	}

	skin, err := detector.NewSkinDetector(cfg)
	if err != nil {
		// Presets are validated constants; this only trips on a bug.
		log.Printf("Failed to build skin detector: %v", err)
		skin, _ = detector.NewSkinDetector(detector.DefaultConfig())
	}
	a.skin = skin
	a.detector = skin

	a.session = gesture.NewSession(a.loadVocabulary())

	return a
}

// loadVocabulary reads the vocabulary lists from the store, falling back to
// the built-in defaults.
func (a *App) loadVocabulary() *gesture.Vocabulary {
	if a.config.Store == nil {
		return gesture.DefaultVocabulary()
	}
	vocab, err := a.config.Store.Vocabulary().Load()
	if err != nil {
		log.Printf("Failed to load vocabulary, using defaults: %v", err)
		return gesture.DefaultVocabulary()
	}
	return vocab
}

// ReloadVocabulary rebuilds the session over the current stored vocabulary.
// The session state is cleared, as a new session begins.
func (a *App) ReloadVocabulary() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = gesture.NewSession(a.loadVocabulary())
}

// SetEnabled enables or disables sign detection. Disabling clears the
// session: no state survives across independent detection sessions.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enabled && !enabled {
		a.session.Reset()
	}
	a.enabled = enabled
}

// IsEnabled returns whether sign detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera implementation. Must be called before Start;
// the pipeline loop reads from whichever camera is set when it begins.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Events returns the hub UI collaborators subscribe to.
func (a *App) Events() *Hub {
	return a.hub
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Sequence returns the currently accumulated symbol string.
func (a *App) Sequence() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.Sequence()
}

// Preset returns the active lighting preset name.
func (a *App) Preset() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.preset
}

// SetPreset switches the detector thresholds to a named lighting preset and
// persists the choice.
func (a *App) SetPreset(name string) error {
	cfg, err := detector.PresetConfig(name)
	if err != nil {
		return err
	}
	if a.skin != nil {
		if err := a.skin.SetConfig(cfg); err != nil {
			return err
		}
	}

	a.mu.Lock()
	a.preset = name
	a.mu.Unlock()

	if a.config.Store != nil {
		if err := a.config.Store.Settings().Set(store.SettingPreset, name); err != nil {
			return err
		}
	}
	return nil
}

// ClearSession clears the stabilizer history and the accumulated sequence:
// the user-facing "clear" action.
func (a *App) ClearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.Reset()
}

// Reset restores the "normal" preset and clears all session state.
func (a *App) Reset() error {
	if err := a.SetPreset(detector.PresetNormal); err != nil {
		return err
	}
	a.ClearSession()
	return nil
}

// ProcessFrame runs one full pipeline pass over a frame and publishes the
// resulting events. It returns processed=false with a nil error when another
// invocation is already in flight; the frame is dropped, not queued. A
// detector failure also returns processed=false, with the error.
func (a *App) ProcessFrame(frame *detector.Frame) (gesture.Result, bool, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return gesture.Result{}, false, nil
	}
	defer a.busy.Store(false)

	a.mu.RLock()
	d := a.detector
	session := a.session
	a.mu.RUnlock()

	features, err := d.Detect(frame)
	if err != nil {
		return gesture.Result{}, false, fmt.Errorf("detecting hand: %w", err)
	}

	result := session.Advance(features)

	a.hub.Publish(Event{Type: EventGesture, Gesture: &result.Update})
	if result.Symbol != nil {
		a.hub.Publish(Event{Type: EventSymbol, Symbol: result.Symbol})
	}
	if result.Match != nil {
		a.hub.Publish(Event{Type: EventMatch, Match: result.Match})
	}

	return result, true, nil
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		if !errors.Is(err, capture.ErrCameraNotOpen) {
			log.Printf("Error closing camera: %v", err)
		}
	}

	// Reset motion baseline
	a.motion.Reset()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	// Stopping ends the session
	a.session.Reset()

	log.Println("Detection pipeline stopped")
}
