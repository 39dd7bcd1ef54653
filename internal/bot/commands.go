package bot

import (
	"strings"
	"unicode"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// Command describes one slash command for help text and the bot's command menu.
type Command struct {
	Name        string
	Usage       string
	Description string
}

var Commands = []Command{
	{Name: "log", Usage: "/log date, type, price, location, remarks, mileage", Description: "Log maintenance in one line"},
	{Name: "logstep", Usage: "/logstep", Description: "Log maintenance step by step"},
	{Name: "cancel", Usage: "/cancel", Description: "Cancel the step-by-step entry"},
	{Name: "viewlast", Usage: "/viewlast [type]", Description: "Show the last record of a type"},
	{Name: "updatelast", Usage: "/updatelast <field> <value>", Description: "Change a field of the last record"},
	{Name: "updaterecord", Usage: "/updaterecord <id> <field> <value>", Description: "Change a field of a record"},
	{Name: "deletelast", Usage: "/deletelast", Description: "Delete the last record"},
	{Name: "deleterecord", Usage: "/deleterecord <id>", Description: "Delete a record"},
	{Name: "export", Usage: "/export", Description: "Download all records as CSV"},
	{Name: "help", Usage: "/help", Description: "Show this help"},
}

// parseCommand splits "/name@bot args" into its lower-cased name and argument text.
// Any whitespace ends the name, so arguments may start on the next line.
func parseCommand(text string) (string, string, bool) {
	body, ok := strings.CutPrefix(text, "/")
	if !ok {
		return "", "", false
	}

	head, args := body, ""
	if i := strings.IndexFunc(body, unicode.IsSpace); i >= 0 {
		head, args = body[:i], body[i:]
	}
	name, _, _ := strings.Cut(head, "@")
	if name == "" {
		return "", "", false
	}

	return strings.ToLower(name), strings.TrimSpace(args), true
}

func helpText() string {
	var b strings.Builder
	b.WriteString("🏍️ BikeBuddy keeps your motorcycle maintenance log.\n\n")
	for _, cmd := range Commands {
		b.WriteString(cmd.Usage)
		b.WriteString(" - ")
		b.WriteString(cmd.Description)
		b.WriteString("\n")
	}
	b.WriteString("\nFields: ")
	b.WriteString(strings.Join(domain.FieldNames(), ", "))
	return b.String()
}
