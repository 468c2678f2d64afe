package model

// Package model defines domain data structures used across the app: counter
// samples, rate readings, and the display unit mode. Structures are small
// value types handed between the meter loop and the UI.
