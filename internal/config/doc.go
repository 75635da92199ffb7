// Package config provides user configuration management for souschef.
//
// This package manages a YAML-based configuration file that stores
// application preferences (units, keep-awake, step timers) and per-recipe
// star ratings. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/souschef/config.yaml or $HOME/.config/souschef/config.yaml
//   - macOS: $HOME/.config/souschef/config.yaml
//   - Windows: %LOCALAPPDATA%\souschef\config.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Rate a recipe (out-of-range values clamp to [0, 5])
//	registry.SetRating("shakshuka", 4)
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
