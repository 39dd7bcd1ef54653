package record

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

const labelWidth = 18

type RenderOptions struct {
	Title string
	// Filter is shown in the header and in the empty-state message.
	Filter string
}

func renderView(records []domain.Record, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Motorcycle Maintenance Log"
	}

	filter := opts.Filter
	if filter == "" {
		filter = domain.LatestFilter
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("filter: %s  records: %d", filter, len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("No records found for %s.", filter)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.card.Render(renderRecord(record, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.Record, s styles) string {
	parts := []string{s.id.Render(fmt.Sprintf("Record %s", record.ID))}

	for _, field := range domain.Fields {
		value := s.value.Render(record.Value(field))
		if record.Value(field) == "" {
			value = s.empty.Render("(empty)")
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(field.Label()+":"), value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
