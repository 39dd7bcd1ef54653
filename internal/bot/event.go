package bot

import (
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// MaxCallbackData is the largest button payload Telegram accepts, in bytes.
const MaxCallbackData = 64

const (
	callbackStep   = "step"
	callbackView   = "view"
	callbackDelete = "del"

	deleteYes = "yes"
	deleteNo  = "no"
)

// Event is one inbound chat update. Exactly one of Text or Callback is set.
type Event struct {
	// ID correlates log lines for the event; Handle fills it when empty.
	ID             string
	ConversationID domain.ConversationID
	Text           string
	Callback       string
}

type Button struct {
	Label string
	Data  string
}

type Document struct {
	Name string
	Data []byte
}

type Reply struct {
	Text     string
	Buttons  [][]Button
	Document *Document
}

func encodeCallback(parts ...string) (string, bool) {
	data := strings.Join(parts, ":")
	return data, len(data) <= MaxCallbackData
}

func decodeCallback(data string) (string, string) {
	kind, arg, _ := strings.Cut(data, ":")
	return kind, arg
}

// buttonRows lays buttons out two per row. Buttons whose payload would exceed the
// callback limit are left out; the user can still type the value.
func buttonRows(kind string, choices []choice) [][]Button {
	var rows [][]Button
	var row []Button
	for _, c := range choices {
		data, ok := encodeCallback(kind, c.value)
		if !ok {
			continue
		}
		row = append(row, Button{Label: c.label, Data: data})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

type choice struct {
	label string
	value string
}
