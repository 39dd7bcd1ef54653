package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const exportLabel = "Exporting maintenance log..."

var exportCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

type exportProgressMsg struct {
	rows int
}

type exportDoneMsg struct {
	err error
}

// exportProgressModel shows a spinner and the number of records read so far
// while the export pages through the store.
type exportProgressModel struct {
	spinner spinner.Model
	run     tea.Cmd
	rows    int
	err     error
	done    bool
}

func newExportProgressModel(run tea.Cmd) exportProgressModel {
	return exportProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
		),
		run: run,
	}
}

func (m exportProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m exportProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case exportProgressMsg:
		m.rows = msg.rows
		return m, nil
	case exportDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m exportProgressModel) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s %s", m.spinner.View(), exportLabel)
	if m.rows > 0 {
		line += " " + exportCountStyle.Render(fmt.Sprintf("%d records read", m.rows))
	}
	return line
}

// runExportProgress renders progress on output while run reads the store. run
// reports the running row count through its progress callback.
func runExportProgress(ctx context.Context, output io.Writer, run func(context.Context, func(rows int)) error) error {
	var p *tea.Program
	report := func(rows int) {
		p.Send(exportProgressMsg{rows: rows})
	}

	p = tea.NewProgram(
		newExportProgressModel(func() tea.Msg {
			return exportDoneMsg{err: run(ctx, report)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(exportProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}
	return result.err
}
