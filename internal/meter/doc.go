package meter

// Package meter implements the rate-sampling core: a pure Tick function that
// turns successive cumulative counter samples into instantaneous rates, and a
// Service that drives it on a timer against a counter Source.
