// Package tray provides a macOS system tray interface for the Mudra hand sign system.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the macOS system tray application.
type Tray struct {
	onToggle   func(enabled bool)
	onPreset   func(name string)
	onClear    func()
	onSettings func()
	onQuit     func()
	enabled    bool
	preset     string
	mu         sync.RWMutex

	// Menu items stored for later updates
	menuToggle   *systray.MenuItem
	menuSequence *systray.MenuItem
	menuPresets  map[string]*systray.MenuItem
}

// presetNames is the preset submenu in display order.
var presetNames = []string{"bright", "normal", "dim"}

// New creates a new Tray instance with enabled state set to false by default:
// the user opts in to detection.
func New() *Tray {
	return &Tray{
		preset:      "normal",
		menuPresets: make(map[string]*systray.MenuItem),
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnPreset sets the callback function to be called when a lighting preset is selected.
func (t *Tray) OnPreset(fn func(name string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPreset = fn
}

// OnClear sets the callback function to be called when the clear menu item is clicked.
func (t *Tray) OnClear(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onClear = fn
}

// OnSettings sets the callback function to be called when the settings menu item is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	// Set the tray title and tooltip
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Hand Sign Recognition")

	// Create menu items
	t.menuToggle = systray.AddMenuItem("○ Disabled", "Toggle sign detection")
	systray.AddSeparator()

	t.menuSequence = systray.AddMenuItem("Sequence: (empty)", "Accumulated symbol sequence")
	t.menuSequence.Disable()
	menuClear := systray.AddMenuItem("Clear Sequence", "Clear the accumulated sequence")
	systray.AddSeparator()

	menuLighting := systray.AddMenuItem("Lighting", "Select a lighting preset")
	t.mu.RLock()
	active := t.preset
	t.mu.RUnlock()
	for _, name := range presetNames {
		t.menuPresets[name] = menuLighting.AddSubMenuItemCheckbox(name, "Switch to the "+name+" preset", name == active)
	}
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Settings...", "Open settings in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuClear.ClickedCh:
				t.handleClear()
			case <-t.menuPresets["bright"].ClickedCh:
				t.handlePreset("bright")
			case <-t.menuPresets["normal"].ClickedCh:
				t.handlePreset("normal")
			case <-t.menuPresets["dim"].ClickedCh:
				t.handlePreset("dim")
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
// It performs cleanup tasks.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	// Update menu item text based on new state
	if enabled {
		t.menuToggle.SetTitle("● Enabled")
	} else {
		t.menuToggle.SetTitle("○ Disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handlePreset handles a lighting preset submenu click.
func (t *Tray) handlePreset(name string) {
	t.mu.Lock()
	t.preset = name
	for n, item := range t.menuPresets {
		if n == name {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	callback := t.onPreset
	t.mu.Unlock()

	if callback != nil {
		callback(name)
	}
}

// handleClear handles the clear menu item click.
func (t *Tray) handleClear() {
	t.mu.RLock()
	callback := t.onClear
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
	t.SetSequence("")
}

// handleSettings handles the settings menu item click.
func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetSequence updates the accumulated sequence display in the menu.
func (t *Tray) SetSequence(sequence string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuSequence != nil {
		if sequence == "" {
			t.menuSequence.SetTitle("Sequence: (empty)")
		} else {
			t.menuSequence.SetTitle("Sequence: " + sequence)
		}
	}
}

// SetPresetChecked marks the given preset as the active submenu entry. Safe
// to call before Run; the menu is built with the last value set.
func (t *Tray) SetPresetChecked(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.preset = name
	for n, item := range t.menuPresets {
		if item == nil {
			continue
		}
		if n == name {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
