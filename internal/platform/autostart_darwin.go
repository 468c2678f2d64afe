//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

const launchAgentLabel = "com.ultrameter.ultra-meter"

// IsAutostartEnabled reports whether the LaunchAgents plist exists.
func IsAutostartEnabled() (bool, error) {
	path, err := launchAgentPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat launch agent: %w", err)
	}
	return true, nil
}

// SetAutostart writes or removes the per-user LaunchAgents plist for the
// current binary.
func SetAutostart(enable bool) error {
	path, err := launchAgentPath()
	if err != nil {
		return err
	}

	if !enable {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove launch agent: %w", err)
		}
		return nil
	}

	exe, err := ExecutablePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create launch agents dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(launchAgentPlist(exe)), 0644); err != nil {
		return fmt.Errorf("write launch agent: %w", err)
	}
	return nil
}

func launchAgentPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", launchAgentLabel+".plist"), nil
}

func launchAgentPlist(exe string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, launchAgentLabel, exe)
}
