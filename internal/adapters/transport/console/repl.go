package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// Conversation is the conversation id used for every console event.
const Conversation = domain.ConversationID("console")

var buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

type Handler interface {
	Handle(ctx context.Context, ev bot.Event) []bot.Reply
}

type Options struct {
	// DocumentDir receives exported documents. Empty means the working directory.
	DocumentDir string
}

// REPL drives a Handler from line-oriented input. Lines starting with "!" press
// the button with that payload, everything else is sent as a chat message.
type REPL struct {
	handler     Handler
	in          io.Reader
	out         io.Writer
	documentDir string
}

func New(handler Handler, in io.Reader, out io.Writer, opts Options) *REPL {
	return &REPL{
		handler:     handler,
		in:          in,
		out:         out,
		documentDir: opts.DocumentDir,
	}
}

func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	r.prompt()

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			r.prompt()
			continue
		}
		if line == "!quit" {
			return nil
		}

		ev := bot.Event{ConversationID: Conversation}
		if data, pressed := strings.CutPrefix(line, "!"); pressed {
			ev.Callback = data
		} else {
			ev.Text = line
		}

		for _, reply := range r.handler.Handle(ctx, ev) {
			if err := r.render(reply); err != nil {
				return err
			}
		}
		r.prompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}
	return nil
}

func (r *REPL) prompt() {
	_, _ = fmt.Fprint(r.out, "> ")
}

func (r *REPL) render(reply bot.Reply) error {
	if reply.Text != "" {
		if _, err := fmt.Fprintln(r.out, reply.Text); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}

	for _, row := range reply.Buttons {
		labels := make([]string, 0, len(row))
		for _, button := range row {
			labels = append(labels, buttonStyle.Render(fmt.Sprintf("[%s] !%s", button.Label, button.Data)))
		}
		if _, err := fmt.Fprintln(r.out, "  "+strings.Join(labels, "  ")); err != nil {
			return fmt.Errorf("write buttons: %w", err)
		}
	}

	if reply.Document != nil {
		path := filepath.Join(r.documentDir, filepath.Base(reply.Document.Name))
		if err := os.WriteFile(path, reply.Document.Data, 0o600); err != nil {
			return fmt.Errorf("write document %s: %w", path, err)
		}
		if _, err := fmt.Fprintf(r.out, "📎 saved %s (%d bytes)\n", path, len(reply.Document.Data)); err != nil {
			return fmt.Errorf("write document notice: %w", err)
		}
	}

	return nil
}
