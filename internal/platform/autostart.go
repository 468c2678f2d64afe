package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Autostart entry name, shared by all platform backends.
const AutostartName = "UltraMeter"

// ExecutablePath returns the resolved path of the running binary for use in
// autostart entries.
func ExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		// A dangling symlink still points at something launchable
		return exe, nil
	}
	return resolved, nil
}
