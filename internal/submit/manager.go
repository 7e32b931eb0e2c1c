package submit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/handiism/mb-seeder/internal/audio"
	"github.com/handiism/mb-seeder/internal/browser"
	"github.com/handiism/mb-seeder/internal/config"
	ioutils "github.com/handiism/mb-seeder/internal/io"
	"github.com/handiism/mb-seeder/internal/model"
	"github.com/handiism/mb-seeder/internal/seed"
)

// ErrNoFiles is returned by Load when no readable audio file was found.
var ErrNoFiles = errors.New("no audio files found")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower case name of the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	}
	return "unknown"
}

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Option customizes a Manager.
type Option func(*Manager)

// WithFs makes the Manager read audio files and write pages on fs instead
// of the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithOpener replaces the browser used to open pages.
func WithOpener(o browser.Opener) Option {
	return func(m *Manager) { m.opener = o }
}

// WithRegistry replaces the registry of available actions. By default the
// cluster and file actions are registered.
func WithRegistry(r *seed.Registry) Option {
	return func(m *Manager) { m.registry = r }
}

// WithLogger sets the logger for diagnostics such as unreadable disc
// numbers. By default the global logger is used.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.log = logger }
}

// Manager coordinates loading files and running seeding actions.
type Manager struct {
	settings *config.Settings
	fs       afero.Fs
	opener   browser.Opener
	registry *seed.Registry
	log      zerolog.Logger

	scanner *audio.Scanner
	builder *seed.FormBuilder

	filesRead  atomic.Int32
	filesTotal atomic.Int32

	values     *seed.FormValues
	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new Manager.
//
// onProgress may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) (*Manager, error) {
	m := &Manager{
		settings:   settings,
		fs:         afero.NewOsFs(),
		log:        log.Logger,
		values:     seed.NewFormValues(),
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = seed.NewRegistry()
		if err := seed.RegisterDefaults(m.registry); err != nil {
			return nil, err
		}
	}
	if m.opener == nil {
		m.opener = browser.NewCommandOpener(settings.BrowserCommand)
	}

	m.scanner = audio.NewScanner(m.fs, audio.NewReader(m.fs, m.log), settings.MaxConcurrentReads)
	m.scanner.OnError(func(path string, err error) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", path, err), Level: LevelWarning})
	})
	m.scanner.OnRead(func(_, total int) {
		m.filesTotal.Store(int32(total))
		m.filesRead.Add(1)
	})
	m.builder = seed.NewFormBuilder(m.log)

	return m, nil
}

// GetProgress returns how many files the current or last Load has read, and
// how many it found.
func (m *Manager) GetProgress() (read, total int32) {
	return m.filesRead.Load(), m.filesTotal.Load()
}

// Registry returns the actions the Manager can run.
func (m *Manager) Registry() *seed.Registry {
	return m.registry
}

// Load reads the audio files below paths and groups them into clusters.
//
// Unreadable files are reported as warnings and skipped. Returns ErrNoFiles
// if nothing could be read.
func (m *Manager) Load(ctx context.Context, paths []string) (*Library, error) {
	m.filesRead.Store(0)
	m.filesTotal.Store(0)

	for _, p := range paths {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Scanning %s", p), Level: LevelVerbose})
	}

	files, err := m.scanner.Scan(ctx, paths)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error scanning: %v", err), Level: LevelError})
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	lib := &Library{Files: files, Clusters: model.Clusterize(files)}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d files in %d clusters", len(lib.Files), len(lib.Clusters)), Level: LevelInfo})

	return lib, nil
}

// Run runs the action with the given ID on selection.
//
// The action fills the form values, which are written as a self-submitting
// page to Settings.OutputDir (or a temporary file) and opened in the
// browser if Settings.OpenBrowser is set. Returns the path of the page.
//
// The form values are cleared when Run returns, whether it succeeded or not.
func (m *Manager) Run(ctx context.Context, actionID string, selection []model.Target) (string, error) {
	action, err := m.registry.Lookup(actionID)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.values.Clear()

	if err := action.FormValues(m.builder, selection, m.values); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %v", action.Name, err), Level: LevelError})
		return "", err
	}

	page := &seed.Page{
		Title:  action.Name,
		Action: m.settings.ServerURL(action.SubmitPath),
		Values: m.values,
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Seeding %d fields to %s", m.values.Len(), page.Action), Level: LevelVerbose})

	path, err := m.writePage(page, selection[0])
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing page: %v", err), Level: LevelError})
		return "", err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelVerbose})

	if !m.settings.OpenBrowser {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Open %s in a browser to continue", path), Level: LevelSuccess})
		return path, nil
	}

	u, err := browser.FileURL(path)
	if err != nil {
		return path, err
	}
	if err := m.opener.Open(ctx, u); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error opening browser: %v", err), Level: LevelError})
		return path, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Opened %s", action.Name), Level: LevelSuccess})

	return path, nil
}

// writePage renders page into the output directory, or into a new temporary
// file if none is configured.
func (m *Manager) writePage(page *seed.Page, target model.Target) (string, error) {
	if m.settings.OutputDir == "" {
		return ioutils.WriteTempFile(m.fs, "", "mb-seeder-*.html", page.Render)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return "", err
	}
	if err := ioutils.EnsureDir(m.fs, m.settings.OutputDir); err != nil {
		return "", err
	}

	path := ioutils.PagePath(m.settings.OutputDir, Label(target)+" - "+page.Title)
	if err := ioutils.WriteFile(m.fs, path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
