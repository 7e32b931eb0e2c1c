// Package config provides configuration management for mb-seeder.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Validation of user supplied values
//   - Building URLs on the configured MusicBrainz server
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Seeds https://musicbrainz.org
//	// Opens pages in the default browser
//
// # Loading from File
//
//	settings, err := config.Load(afero.NewOsFs(), config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ServerHost = "test.musicbrainz.org"
//	err := settings.Save(afero.NewOsFs(), config.DefaultPath())
//
// # Server URLs
//
//	settings.ServerURL("/release/add") // "https://musicbrainz.org/release/add"
package config
