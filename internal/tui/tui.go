// Package tui provides a Bubble Tea terminal user interface for mb-seeder.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/mb-seeder/internal/config"
	"github.com/handiism/mb-seeder/internal/model"
	"github.com/handiism/mb-seeder/internal/seed"
	"github.com/handiism/mb-seeder/internal/submit"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BA478F")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	clusterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BA478F"))
)

// maxVisibleRows is the number of clusters and files shown at once.
const maxVisibleRows = 15

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateBrowse
	StateActions
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   submit.ProgressLevel
}

// logBuffer collects progress events from manager goroutines until the next
// tick drains them.
type logBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (b *logBuffer) add(e submit.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, LogEntry{Message: e.Message, Level: e.Level})
}

func (b *logBuffer) drain() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.entries
	b.entries = nil
	return out
}

// row is one selectable line in the browse view: a cluster or one of its
// files.
type row struct {
	target model.Target
	label  string
	file   bool
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	pending   *logBuffer
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *submit.Manager
	library *submit.Library

	// Browse and action menu
	rows    []row
	cursor  int
	actions []*seed.Action
	choice  int

	// Result of the last run
	pagePath string
	ran      *seed.Action

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
//
// opts are passed to the submit.Manager used to load files and run actions.
func NewModel(settings *config.Settings, opts ...submit.Option) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music/album"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BA478F"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	pending := &logBuffer{}
	manager, err := submit.NewManager(settings, pending.add, opts...)
	if err != nil {
		return Model{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		pending:   pending,
		ctx:       ctx,
		cancel:    cancel,
		manager:   manager,
		verbose:   settings.Verbose,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// LoadDoneMsg is sent when scanning completes.
	LoadDoneMsg struct {
		Library *submit.Library
		Err     error
	}

	// RunDoneMsg is sent when an action has written (and opened) its page.
	RunDoneMsg struct {
		Action *seed.Action
		Path   string
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		m.drainLogs()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.library = msg.Library
		m.rows = buildRows(msg.Library)
		m.cursor = 0
		m.state = StateBrowse

	case RunDoneMsg:
		m.drainLogs()
		m.ran = msg.Action
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.pagePath = msg.Path
		m.state = StateComplete

	case TickMsg:
		m.drainLogs()
		if m.state == StateLoading {
			read, total := m.manager.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(read) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey applies a key press. handled is false when the key should still
// reach the text input.
func (m Model) handleKey(msg tea.KeyMsg) (next Model, cmd tea.Cmd, handled bool) {
	key := msg.String()
	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit, true
	}

	switch m.state {
	case StateInput:
		switch key {
		case "esc":
			return m, tea.Quit, true
		case "enter":
			path := strings.TrimSpace(m.textInput.Value())
			if path == "" {
				return m, nil, true
			}
			m.state = StateLoading
			m.logs = nil
			return m, tea.Batch(m.load(path), m.spinner.Tick, m.tickProgress()), true
		case "tab":
			m.verbose = !m.verbose
			return m, nil, true
		}

	case StateLoading, StateRunning:
		if key == "esc" {
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		}
		return m, nil, true

	case StateBrowse:
		switch key {
		case "up", "k":
			m.cursor = max(m.cursor-1, 0)
		case "down", "j":
			m.cursor = min(m.cursor+1, len(m.rows)-1)
		case "enter":
			if len(m.rows) == 0 {
				break
			}
			m.actions = m.manager.Registry().For(m.rows[m.cursor].target.Kind())
			m.choice = 0
			if len(m.actions) > 0 {
				m.state = StateActions
			}
		case "esc", "r":
			m.reset()
		case "q":
			return m, tea.Quit, true
		}
		return m, nil, true

	case StateActions:
		switch key {
		case "up", "k":
			m.choice = max(m.choice-1, 0)
		case "down", "j":
			m.choice = min(m.choice+1, len(m.actions)-1)
		case "enter":
			m.state = StateRunning
			return m, tea.Batch(m.run(m.actions[m.choice], m.rows[m.cursor].target), m.spinner.Tick), true
		case "esc":
			m.state = StateBrowse
		case "q":
			return m, tea.Quit, true
		}
		return m, nil, true

	case StateComplete, StateError:
		switch key {
		case "b", "esc":
			if m.library != nil {
				m.state = StateBrowse
				m.err = nil
			}
		case "r":
			m.reset()
		case "q":
			return m, tea.Quit, true
		}
		return m, nil, true
	}

	return m, nil, false
}

// reset goes back to the path input.
func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.library = nil
	m.rows = nil
	m.cursor = 0
	m.pagePath = ""
	m.textInput.SetValue("")
	m.textInput.Focus()
}

// drainLogs moves buffered progress events into the visible log.
func (m *Model) drainLogs() {
	for _, e := range m.pending.drain() {
		if e.Level == submit.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, e)
	}
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// load scans path in the background.
func (m Model) load(path string) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		lib, err := manager.Load(ctx, []string{path})
		return LoadDoneMsg{Library: lib, Err: err}
	}
}

// run runs action on target in the background.
func (m Model) run(action *seed.Action, target model.Target) tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		path, err := manager.Run(ctx, action.ID, []model.Target{target})
		return RunDoneMsg{Action: action, Path: path, Err: err}
	}
}

// buildRows lists every cluster followed by its files.
func buildRows(lib *submit.Library) []row {
	var rows []row
	for _, c := range lib.Clusters {
		rows = append(rows, row{target: c, label: fmt.Sprintf("%s (%d)", c.Title(), len(c.Files))})
		for _, f := range c.Files {
			label := f.Metadata.GetDefault(model.TagTitle, f.Metadata.Get(model.TagFilename))
			rows = append(rows, row{
				target: f,
				label:  fmt.Sprintf("%s [%s]", label, f.Metadata.Get(model.TagLength)),
				file:   true,
			})
		}
	}
	return rows
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 MusicBrainz Seeder"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Add tagged files to %s", m.settings.ServerURL(""))))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateActions:
		b.WriteString(m.viewActions())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a file or directory to scan:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s Verbose/debug output (tab)\n", verboseCheck)
	b.WriteString("\n")
	if m.settings.OutputDir != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Pages are written to: %s", m.settings.OutputDir)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading tags..."))
	b.WriteString("\n\n")

	read, total := m.manager.GetProgress()
	var percent float64
	if total > 0 {
		percent = float64(read) / float64(total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", read, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Found %d cluster(s), %d file(s):", len(m.library.Clusters), len(m.library.Files))))
	b.WriteString("\n")

	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end := min(start+maxVisibleRows, len(m.rows))

	for i := start; i < end; i++ {
		r := m.rows[i]

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("› ")
		}

		line := clusterStyle.Render("♪ " + r.label)
		if r.file {
			line = "    " + r.label
		}
		b.WriteString(prefix + line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewActions() string {
	var b strings.Builder

	r := m.rows[m.cursor]
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s: %s", r.target.Kind(), submit.Label(r.target))))
	b.WriteString("\n\n")

	for i, a := range m.actions {
		if i == m.choice {
			b.WriteString(cursorStyle.Render("› " + a.Name))
		} else {
			b.WriteString("  " + a.Name)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Writing seed page..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	next := "Submit the form in your browser to continue."
	if !m.settings.OpenBrowser {
		next = "Open the page in a browser to continue."
	}

	name := ""
	if m.ran != nil {
		name = m.ran.Name
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ %s\n\n"+
			"Page: %s\n\n"+
			"%s",
		name,
		m.pagePath,
		next,
	))
	b.WriteString(box)
	b.WriteString("\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		fmt.Fprintf(&b, "  %s", m.err.Error())
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case submit.LevelError:
			style = errorStyle
			prefix = "✗"
		case submit.LevelWarning:
			style = warningStyle
			prefix = "!"
		case submit.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case submit.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • tab: verbose • esc: quit"
	case StateLoading, StateRunning:
		return "esc: cancel"
	case StateBrowse:
		return "↑/↓: select • enter: actions • r: new path • q: quit"
	case StateActions:
		return "↑/↓: select • enter: run • esc: back • q: quit"
	case StateComplete, StateError:
		if m.library != nil {
			return "b: back to list • r: new path • q: quit"
		}
		return "r: new path • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	model, err := NewModel(settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
