package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// AppName is the directory name used below the XDG base directories.
const AppName = "mb-seeder"

// FileName is the name of the settings file in the config directory.
const FileName = "config.toml"

// MusicBrainzServers are the official servers. They are always reached over
// https, whatever port is configured.
var MusicBrainzServers = []string{"musicbrainz.org", "beta.musicbrainz.org"}

// Settings holds all configuration options.
type Settings struct {
	// Server settings
	ServerHost string `toml:"server_host" validate:"required,hostname_rfc1123|ip"`
	ServerPort int    `toml:"server_port" validate:"min=0,max=65535"`

	// Page settings
	OutputDir      string `toml:"output_dir"`
	OpenBrowser    bool   `toml:"open_browser"`
	BrowserCommand string `toml:"browser_command"`

	// Scanning settings
	MaxConcurrentReads int `toml:"max_concurrent_reads" validate:"min=0,max=64"`

	// Logging settings
	LogFile string `toml:"log_file"`
	Verbose bool   `toml:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ServerHost:         "musicbrainz.org",
		ServerPort:         0,
		OpenBrowser:        true,
		MaxConcurrentReads: 4,
	}
}

// DefaultPath returns the settings file in the user's XDG config directory,
// e.g. ~/.config/mb-seeder/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Load reads settings from a TOML file.
//
// Missing keys keep their default value. A missing file is not an error:
// DefaultSettings() is returned. The result is validated.
func Load(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating its directory if needed.
func (s *Settings) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return afero.WriteFile(fs, path, data, 0o644)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings for values that cannot work.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ServerURL returns the absolute URL of path on the configured MusicBrainz
// server.
//
// The official servers and port 443 use https. Port 0 (unset) and 80 use
// plain http without a port. Any other port is used with http.
//
// Example:
//
//	s := DefaultSettings()
//	s.ServerURL("/release/add") // "https://musicbrainz.org/release/add"
//
//	s.ServerHost, s.ServerPort = "localhost", 5000
//	s.ServerURL("/release/add") // "http://localhost:5000/release/add"
func (s *Settings) ServerURL(path string) string {
	switch {
	case slices.Contains(MusicBrainzServers, s.ServerHost) || s.ServerPort == 443:
		return "https://" + s.ServerHost + path
	case s.ServerPort == 0 || s.ServerPort == 80:
		return "http://" + s.ServerHost + path
	default:
		return "http://" + net.JoinHostPort(s.ServerHost, strconv.Itoa(s.ServerPort)) + path
	}
}
