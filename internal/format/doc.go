package format

// Package format turns byte rates into human-readable display strings:
// auto-scaled unit selection for bits or bytes mode, pinned-unit formatting,
// and traffic-level classification for coloring. All functions are pure.
