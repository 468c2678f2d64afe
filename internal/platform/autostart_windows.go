//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// IsAutostartEnabled reports whether the HKCU Run entry exists.
func IsAutostartEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, fmt.Errorf("open run key: %w", err)
	}
	defer key.Close()

	if _, _, err := key.GetStringValue(AutostartName); err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, fmt.Errorf("query run value: %w", err)
	}
	return true, nil
}

// SetAutostart creates or removes the HKCU Run entry for the current binary.
func SetAutostart(enable bool) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer key.Close()

	if !enable {
		if err := key.DeleteValue(AutostartName); err != nil && err != registry.ErrNotExist {
			return fmt.Errorf("delete run value: %w", err)
		}
		return nil
	}

	exe, err := ExecutablePath()
	if err != nil {
		return err
	}
	if err := key.SetStringValue(AutostartName, fmt.Sprintf("%q", exe)); err != nil {
		return fmt.Errorf("set run value: %w", err)
	}
	return nil
}
