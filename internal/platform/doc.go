package platform

// Package platform holds OS-facing helpers: login-item (autostart)
// management with a backend per operating system, and the screen geometry
// used to dock the strip next to the taskbar.
