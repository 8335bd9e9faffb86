// Package indicator renders a loading spinner with optional text in one of
// three sizes. It is a bubbletea model so terminal commands can run it while
// they wait on I/O, and View can be called directly for static output.
package indicator

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

const DefaultText = "Loading..."

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var styles = map[Size]lipgloss.Style{
	SizeSm: lipgloss.NewStyle(),
	SizeMd: lipgloss.NewStyle().Padding(0, 1),
	SizeLg: lipgloss.NewStyle().Padding(1, 2).Bold(true),
}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7"))

type Option func(*Model)

// WithText sets the label. An empty string hides the label entirely.
func WithText(text string) Option {
	return func(m *Model) { m.text = text }
}

// WithSize picks the visual scale; unrecognized sizes fall back to md.
func WithSize(size Size) Option {
	return func(m *Model) { m.size = normalizeSize(size) }
}

func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

type Model struct {
	text     string
	size     Size
	interval time.Duration
	frame    int
	done     bool
}

type tickMsg struct{}

// DoneMsg stops the indicator and quits the program running it.
type DoneMsg struct{}

func New(opts ...Option) Model {
	m := Model{
		text:     DefaultText,
		size:     SizeMd,
		interval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Text() string { return m.text }
func (m Model) Size() Size   { return m.size }

// Class is the size marker of the rendered indicator.
func (m Model) Class() string { return "indicator-" + string(m.size) }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(frames)
		return m, m.tick()
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	parts := []string{spinnerStyle.Render(frames[m.frame])}
	if m.text != "" {
		parts = append(parts, m.text)
	}
	return styles[m.size].Render(strings.Join(parts, " "))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func normalizeSize(size Size) Size {
	switch Size(strings.ToLower(strings.TrimSpace(string(size)))) {
	case SizeSm:
		return SizeSm
	case SizeLg:
		return SizeLg
	default:
		return SizeMd
	}
}
