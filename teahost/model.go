// Package teahost runs a split-pane layout as a Bubble Tea program. Each
// leaf renders as a lipgloss box and the boxes are joined bottom-up along
// the solved layout.
package teahost

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	splitpane "github.com/grindlemire/go-splitpane"
	"github.com/grindlemire/go-splitpane/internal/debug"
)

// Model is a tea.Model driving a split layout. It is also the layout's Host.
type Model struct {
	layout  *splitpane.SplitLayout
	styles  Styles
	content func(splitpane.PaneBox) string

	layoutOpts []splitpane.Option

	capture func(splitpane.PointerEvent)
}

var _ tea.Model = (*Model)(nil)
var _ splitpane.Host = (*Model)(nil)

// Option is a functional option for configuring a Model.
type Option func(*Model) error

// Styles are the lipgloss styles used to render a layout.
type Styles struct {
	Box       lipgloss.Style
	Title     lipgloss.Style
	Separator lipgloss.Style
	Active    lipgloss.Style // separator being dragged
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
		Title:     lipgloss.NewStyle().Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// WithStyles sets the render styles.
func WithStyles(s Styles) Option {
	return func(m *Model) error {
		m.styles = s
		return nil
	}
}

// WithContent sets the function producing the text inside each leaf.
func WithContent(fn func(splitpane.PaneBox) string) Option {
	return func(m *Model) error {
		if fn == nil {
			return fmt.Errorf("content func cannot be nil")
		}
		m.content = fn
		return nil
	}
}

// WithLayoutOptions passes options through to splitpane.New.
func WithLayoutOptions(opts ...splitpane.Option) Option {
	return func(m *Model) error {
		m.layoutOpts = append(m.layoutOpts, opts...)
		return nil
	}
}

// New creates a model for cfg.
func New(cfg splitpane.Config, opts ...Option) (*Model, error) {
	m := &Model{
		styles:  DefaultStyles(),
		content: defaultContent,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	layout, err := splitpane.New(cfg, m, m.layoutOpts...)
	if err != nil {
		return nil, err
	}
	m.layout = layout
	return m, nil
}

func defaultContent(box splitpane.PaneBox) string {
	if box.Content == nil {
		return ""
	}
	return fmt.Sprint(box.Content)
}

// Layout returns the layout driven by the model.
func (m *Model) Layout() *splitpane.SplitLayout {
	return m.layout
}

// Measure returns the cells available to the panes of a container along
// its axis, separators excluded.
func (m *Model) Measure(c splitpane.Container) float64 {
	extent, _, ok := m.layout.Frame().Extent(c.SplitID)
	if !ok {
		return 0
	}
	return float64(extent)
}

// CapturePointer routes every mouse message to fn until released.
func (m *Model) CapturePointer(fn func(splitpane.PointerEvent)) func() {
	m.capture = fn
	return func() {
		m.capture = nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Arrange(splitpane.NewRect(0, 0, msg.Width, msg.Height))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.layout.Close()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	x, y := float64(msg.X), float64(msg.Y)
	if m.capture != nil {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.capture(splitpane.PointerEvent{Kind: splitpane.PointerMove, X: x, Y: y})
		case tea.MouseActionRelease:
			m.capture(splitpane.PointerEvent{Kind: splitpane.PointerUp, X: x, Y: y})
		}
		return
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.layout.PointerDown(x, y)
	}
}

// Run runs the model as a full-screen program with mouse motion reporting
// until the user quits or ctx is cancelled.
func (m *Model) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)

	debug.Log("teahost: running")
	_, err := tea.NewProgram(m, opts...).Run()
	m.layout.Close()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("teahost: %w", err)
	}
	return nil
}
