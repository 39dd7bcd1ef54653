package bot

import (
	"fmt"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

const (
	msgLogged          = "✅ Maintenance logged! (ID %s)"
	msgLogUsage        = "⚠️ Format error. Use:\n/log 2025-06-09, Maintenance Type, Price, Location, Remarks, Current Mileage"
	msgSaveFailed      = "⚠️ Could not save to the log. Please try again later."
	msgStepSaveFailed  = "⚠️ Could not save to the log, the entry was discarded. Send /logstep to start again."
	msgReadFailed      = "⚠️ Could not read from the log. Please try again later."
	msgWriteFailed     = "⚠️ Could not update the log. Please try again later."
	msgInternal        = "⚠️ Something went wrong. Please try again."
	msgNothingToCancel = "Nothing to cancel."
	msgSessionEnded    = "This entry has already ended. Send /logstep to start a new one."
	msgViewMenu        = "🔎 Which record do you want to see?"
	msgNotFoundFilter  = "No records found for %s."
	msgNotFoundID      = "No record with ID %s."
	msgNotFoundLast    = "No records yet."
	msgUpdated         = "✏️ Record %s updated: %s = %s"
	msgUpdateLastUsage = "⚠️ Usage: /updatelast <field> <new value>\nFields: %s"
	msgUpdateUsage     = "⚠️ Usage: /updaterecord <id> <field> <new value>\nFields: %s"
	msgUnknownField    = "⚠️ Unknown field %q. Use one of: %s"
	msgDeleteUsage     = "⚠️ Usage: /deleterecord <id>"
	msgDeletePrompt    = "🗑️ Delete this record?\n\n%s"
	msgDeleted         = "🗑️ Record %s deleted."
	msgDeleteKept      = "👍 Record %s kept."
	msgDeleteGone      = "Record %s no longer exists."
	msgNoPending       = "No pending deletion for that record. Send /deletelast or /deleterecord again."
	msgExported        = "📄 Exported %d records."
	msgNothingExport   = "Nothing to export yet."
	msgUnknownCommand  = "Unknown command. Send /help to see what I can do."
	msgUnknownAction   = "That button is no longer valid."
)

// formatRecord renders the id and all six fields, one per line.
func formatRecord(record domain.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 Record %s", record.ID)
	for _, field := range domain.Fields {
		fmt.Fprintf(&b, "\n%s: %s", field.Label(), record.Value(field))
	}
	return b.String()
}

func filterDisplay(filter string) string {
	if filter == "" {
		return domain.LatestFilter
	}
	return filter
}
