package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cameraID := flag.Int("camera", 0, "camera device ID")
	noTray := flag.Bool("no-tray", false, "run without the system tray (headless)")
	flag.Parse()

	fmt.Println("Mudra - Hand Sign Recognition")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the detection pipeline
	a := app.New(app.Config{
		Store:    st,
		CameraID: *cameraID,
	})
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start detection pipeline: %v", err)
	}
	defer a.Stop()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
	})

	fmt.Printf("Starting server on %s\n", *addr)
	go func() {
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *noTray {
		select {}
	}

	runTray(a, *addr)
}

// runTray wires the system tray to the pipeline and blocks until quit.
func runTray(a *app.App, addr string) {
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		if !enabled {
			t.SetSequence("")
		}
	})
	t.OnPreset(func(name string) {
		if err := a.SetPreset(name); err != nil {
			log.Printf("Failed to set preset %q: %v", name, err)
		}
	})
	t.OnClear(a.ClearSession)
	t.OnSettings(func() {
		openBrowser("http://localhost" + addr)
	})
	t.OnQuit(a.Stop)

	t.SetPresetChecked(a.Preset())

	// Mirror accepted symbols into the tray menu.
	events := a.Events().Subscribe()
	go func() {
		for event := range events {
			if event.Type == app.EventSymbol && event.Symbol != nil {
				t.SetSequence(event.Symbol.Sequence)
			}
		}
	}()

	t.Run()
	a.Events().Unsubscribe(events)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
