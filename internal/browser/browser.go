// Package browser opens seed pages in the user's web browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// MaxURLLength is the maximum allowed URL length for browser opening.
const MaxURLLength = 8192

// ErrInvalidURL is returned for URLs that must not be handed to a browser.
var ErrInvalidURL = errors.New("invalid browser URL")

// Opener opens a URL for the user.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// ValidateURL checks that rawURL is a file, http or https URL of reasonable
// length.
func ValidateURL(rawURL string) error {
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("%w: too long: %d bytes (max %d)", ErrInvalidURL, len(rawURL), MaxURLLength)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "file", "http", "https":
		return nil
	}
	return fmt.Errorf("%w: scheme must be file, http or https: %q", ErrInvalidURL, rawURL)
}

// FileURL returns the file:// URL of a local path. Relative paths are made
// absolute first.
//
// Example:
//
//	FileURL("/tmp/mb-seeder-123.html") // "file:///tmp/mb-seeder-123.html"
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive letter
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// CommandOpener opens URLs by starting an external program.
//
// The program is not waited on: the browser keeps running after mb-seeder
// exits.
type CommandOpener struct {
	// Command overrides the platform default, e.g. "firefox". Extra
	// arguments may be given separated by spaces.
	Command string

	goos  string
	start func(cmd *exec.Cmd) error
}

// NewCommandOpener creates a CommandOpener for the running platform. An
// empty command uses the platform default: xdg-open, open or rundll32.
func NewCommandOpener(command string) *CommandOpener {
	return &CommandOpener{
		Command: command,
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

// Open validates rawURL and starts the browser with it.
func (o *CommandOpener) Open(ctx context.Context, rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}

	name, args := o.command(rawURL)
	cmd := exec.CommandContext(context.WithoutCancel(ctx), name, args...)
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// command returns the program and arguments used to open rawURL.
func (o *CommandOpener) command(rawURL string) (string, []string) {
	if fields := strings.Fields(o.Command); len(fields) > 0 {
		return fields[0], append(fields[1:], rawURL)
	}

	switch o.goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
