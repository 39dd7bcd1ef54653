package record

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	records []domain.Record
	opts    RenderOptions
	styles  styles
	output  string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderView(m.records, m.opts, m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render lays out records as styled cards for the terminal.
func Render(records []domain.Record, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{records: records, opts: opts, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
