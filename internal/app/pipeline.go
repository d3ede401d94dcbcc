package app

import (
	"log"
	"time"
)

// runPipeline is the frame loop. It pulls frames from the camera at a
// cadence gated by the motion detector and pushes each one through the
// recognition pipeline.
//
// Loop behavior:
//  1. Start in idle mode (idleFPS=5)
//  2. On motion detected, switch to active mode (activeFPS=15)
//  3. In active mode, run the full frame-to-symbol pipeline
//  4. After 2s with no motion, switch back to idle mode
//
// One frame is fully processed before the next tick is honored; a tick that
// arrives while a frame is still in flight is skipped, so there is never a
// backlog of stale frames.
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.mu.RLock()
	stopCh := a.stopCh
	camera := a.camera
	a.mu.RUnlock()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if detection is disabled
			if !a.IsEnabled() {
				continue
			}

			frame, err := camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				continue
			}

			result, ok, err := a.ProcessFrame(frame)
			if err != nil {
				log.Printf("Error processing frame: %v", err)
				continue
			}
			if ok && result.Symbol != nil {
				log.Printf("Symbol accepted: %s (sequence: %s)", result.Symbol.Label, result.Symbol.Sequence)
			}
		}
	}
}
