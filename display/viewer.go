// Package display hands rendered figures to something that shows them.
package display

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Viewer shows the figure stored at path.
type Viewer interface {
	Show(path string) error
}

// Blocker is implemented by viewers that can tell whether Show returns only
// after the figure has been closed.
type Blocker interface {
	Blocks() bool
}

// Blocks reports whether v holds the figure until Show returns. Viewers
// that do not implement Blocker are assumed to detach.
func Blocks(v Viewer) bool {
	b, ok := v.(Blocker)
	return ok && b.Blocks()
}

// SystemViewer opens figures with the platform's default application.
type SystemViewer struct {
	// GOOS overrides runtime.GOOS, for tests.
	GOOS string
	// Run executes the command; nil means (*exec.Cmd).Run.
	Run func(cmd *exec.Cmd) error
}

// Command returns the opener invocation for path.
func (v SystemViewer) Command(path string) (*exec.Cmd, error) {
	goos := v.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return exec.Command("open", "-W", path), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	default:
		return nil, fmt.Errorf("no viewer for %s", goos)
	}
}

// Blocks is true only where the opener waits for the viewer to exit.
// xdg-open and rundll32 hand the file over and return at once.
func (v SystemViewer) Blocks() bool {
	goos := v.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return goos == "darwin"
}

func (v SystemViewer) Show(path string) error {
	cmd, err := v.Command(path)
	if err != nil {
		return err
	}
	run := v.Run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// NopViewer discards figures.
type NopViewer struct{}

func (NopViewer) Show(string) error { return nil }

func (NopViewer) Blocks() bool { return true }

// Recorder keeps the paths it was asked to show. It does not keep the
// files, so it counts as blocking.
type Recorder struct {
	Paths []string
}

func (r *Recorder) Blocks() bool { return true }

func (r *Recorder) Show(path string) error {
	r.Paths = append(r.Paths, path)
	return nil
}
