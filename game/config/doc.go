// Package config loads board variant presets for the mancala server.
//
// Presets are JSON files in the configs directory, each describing a board
// variant by houses-per-side and seeds-per-house. The manager caches parsed
// presets and falls back to a built-in classic board when the directory has
// no usable "classic" preset.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	preset, err := manager.Load("classic")
//	state := engine.NewGameState(preset)
package config
