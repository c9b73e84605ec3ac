// Package config provides rule preset management for Boardwalk.
//
// The config package handles:
//   - Loading rule presets from JSON files
//   - Preset validation and verification
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Rule presets are stored as JSON files in the configs directory.
// Each preset defines:
//   - Salary paid for passing the start tile
//   - Bail cost for leaving jail early
//   - Starting cash per player
//   - Maximum player count
//   - Game log retention limit
//
// Available Presets:
//
//   - classic: Standard rules with 1500 starting cash
//   - highroller: Bigger bankrolls and steeper bail for faster swings
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	gameConfig, err := manager.LoadConfig("highroller")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default preset
//	defaultConfig := manager.GetDefault()
//
//	// List available presets
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All presets are validated for a non-empty name, non-negative salary and
// bail, positive starting cash, a player cap at or above the minimum player
// count, and a positive log limit.
package config
