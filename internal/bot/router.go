package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/hakambing/bikebuddy-bot/internal/application"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Store       ports.RecordStore
	Sessions    ports.SessionStore
	Deletions   ports.DeletionStore
	Clock       ports.Clock
	Suggestions domain.Suggestions
}

// Router turns chat events into calls on the application services and renders the
// outcome as replies. It never returns an error: every failure becomes a message.
type Router struct {
	records     *application.RecordService
	engine      *application.Engine
	deletions   *application.DeletionFlow
	exporter    *application.Exporter
	clock       ports.Clock
	suggestions domain.Suggestions
}

func NewRouter(opts Options) *Router {
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Router{
		records:     application.NewRecordService(opts.Store),
		engine:      application.NewEngine(opts.Sessions, opts.Store, clock, opts.Suggestions),
		deletions:   application.NewDeletionFlow(opts.Store, opts.Deletions, clock),
		exporter:    application.NewExporter(opts.Store),
		clock:       clock,
		suggestions: opts.Suggestions.WithDefaults(),
	}
}

func (r *Router) Handle(ctx context.Context, ev Event) []Reply {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	logger := log.With().
		Str("event_id", ev.ID).
		Str("conversation", string(ev.ConversationID)).
		Logger()
	ctx = logger.WithContext(ctx)

	if ev.Callback != "" {
		logger.Debug().Str("callback", ev.Callback).Msg("button pressed")
		return r.handleCallback(ctx, ev.ConversationID, ev.Callback)
	}

	text := strings.TrimSpace(ev.Text)
	if name, args, ok := parseCommand(text); ok {
		logger.Debug().Str("command", name).Msg("command received")
		return r.handleCommand(ctx, ev.ConversationID, name, args)
	}
	if text == "" {
		return nil
	}

	return r.handleStepInput(ctx, ev.ConversationID, domain.FreeText{Text: text})
}

func (r *Router) handleCommand(ctx context.Context, conv domain.ConversationID, name string, args string) []Reply {
	switch name {
	case "start", "help":
		return textReply(helpText())
	case "log":
		return r.quickEntry(ctx, args)
	case "logstep":
		return r.startStep(ctx, conv)
	case "cancel":
		return r.cancelStep(ctx, conv)
	case "viewlast":
		if args == "" {
			return r.viewMenu()
		}
		return r.viewLast(ctx, args)
	case "updatelast":
		return r.updateLast(ctx, args)
	case "updaterecord":
		return r.updateRecord(ctx, args)
	case "deletelast":
		return r.promptDelete(ctx, conv, application.Target{Last: true})
	case "deleterecord":
		if args == "" {
			return textReply(msgDeleteUsage)
		}
		target, err := application.ParseTarget(args)
		if err != nil {
			return textReply(msgDeleteUsage)
		}
		return r.promptDelete(ctx, conv, target)
	case "export":
		return r.export(ctx)
	default:
		return textReply(msgUnknownCommand)
	}
}

func (r *Router) handleCallback(ctx context.Context, conv domain.ConversationID, data string) []Reply {
	kind, arg := decodeCallback(data)
	switch kind {
	case callbackStep:
		return r.handleStepInput(ctx, conv, domain.Selection{Choice: arg})
	case callbackView:
		return r.viewLast(ctx, arg)
	case callbackDelete:
		decision, token, _ := strings.Cut(arg, ":")
		switch decision {
		case deleteYes:
			return r.confirmDelete(ctx, conv, token)
		case deleteNo:
			return r.keepRecord(ctx, conv, token)
		}
	}

	zerolog.Ctx(ctx).Warn().Str("callback", data).Msg("unknown callback data")
	return textReply(msgUnknownAction)
}

func (r *Router) quickEntry(ctx context.Context, payload string) []Reply {
	logger := zerolog.Ctx(ctx)

	record, err := r.records.QuickEntry(ctx, payload)
	switch {
	case errors.Is(err, domain.ErrFormat):
		logger.Info().Err(err).Str("op", "log").Msg("quick entry rejected")
		return textReply(msgLogUsage)
	case err != nil:
		logger.Error().Err(err).Str("op", "log").Msg("quick entry failed")
		return textReply(msgSaveFailed)
	}

	logger.Info().Str("op", "log").Str("record_id", string(record.ID)).Msg("record created")
	return textReply(fmt.Sprintf(msgLogged, record.ID))
}

func (r *Router) startStep(ctx context.Context, conv domain.ConversationID) []Reply {
	step, err := r.engine.Start(ctx, conv)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "logstep").Msg("start conversation")
		return textReply(msgInternal)
	}
	return []Reply{stepReply(step)}
}

func (r *Router) cancelStep(ctx context.Context, conv domain.ConversationID) []Reply {
	step, err := r.engine.Cancel(ctx, conv)
	switch {
	case application.IsNoSession(err):
		return textReply(msgNothingToCancel)
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "cancel").Msg("cancel conversation")
		return textReply(msgInternal)
	}
	return []Reply{stepReply(step)}
}

func (r *Router) handleStepInput(ctx context.Context, conv domain.ConversationID, input domain.Input) []Reply {
	logger := zerolog.Ctx(ctx)

	step, err := r.engine.Handle(ctx, conv, input)
	switch {
	case application.IsNoSession(err):
		if _, pressed := input.(domain.Selection); pressed {
			return textReply(msgSessionEnded)
		}
		return nil
	case err != nil && step.State == domain.StateComplete:
		logger.Error().Err(err).Str("op", "logstep").Msg("guided entry not saved")
		return textReply(msgStepSaveFailed)
	case err != nil:
		logger.Error().Err(err).Str("op", "logstep").Msg("advance conversation")
		return textReply(msgInternal)
	}

	if step.State == domain.StateComplete {
		logger.Info().Str("op", "logstep").Str("record_id", string(step.Record.ID)).Msg("record created")
	}
	return []Reply{stepReply(step)}
}

func (r *Router) viewMenu() []Reply {
	choices := make([]choice, 0, len(r.suggestions.MaintenanceTypes)+1)
	for _, maintenanceType := range r.suggestions.MaintenanceTypes {
		choices = append(choices, choice{label: maintenanceType, value: maintenanceType})
	}
	choices = append(choices, choice{label: "Latest", value: domain.LatestFilter})

	return []Reply{{Text: msgViewMenu, Buttons: buttonRows(callbackView, choices)}}
}

func (r *Router) viewLast(ctx context.Context, filter string) []Reply {
	filter = application.NormalizeFilter(filter)

	record, err := r.records.ViewLast(ctx, filter)
	switch {
	case application.IsNotFound(err):
		return textReply(fmt.Sprintf(msgNotFoundFilter, filterDisplay(filter)))
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "viewlast").Str("filter", filter).Msg("view last record")
		return textReply(msgReadFailed)
	}

	return textReply(formatRecord(record))
}

func (r *Router) updateLast(ctx context.Context, args string) []Reply {
	field, value := nextWord(args)
	if field == "" || value == "" {
		return textReply(fmt.Sprintf(msgUpdateLastUsage, strings.Join(domain.FieldNames(), ", ")))
	}

	return r.update(ctx, application.UpdateCommand{
		Target: application.Target{Last: true},
		Field:  field,
		Value:  value,
	}, msgUpdateLastUsage)
}

func (r *Router) updateRecord(ctx context.Context, args string) []Reply {
	usage := fmt.Sprintf(msgUpdateUsage, strings.Join(domain.FieldNames(), ", "))

	rawID, rest := nextWord(args)
	field, value := nextWord(rest)
	if rawID == "" || field == "" || value == "" {
		return textReply(usage)
	}

	target, err := application.ParseTarget(rawID)
	if err != nil {
		return textReply(usage)
	}

	return r.update(ctx, application.UpdateCommand{Target: target, Field: field, Value: value}, msgUpdateUsage)
}

func (r *Router) update(ctx context.Context, cmd application.UpdateCommand, usage string) []Reply {
	logger := zerolog.Ctx(ctx)

	result, err := r.records.Update(ctx, cmd)
	switch {
	case errors.Is(err, domain.ErrUnknownField):
		return textReply(fmt.Sprintf(msgUnknownField, cmd.Field, strings.Join(domain.FieldNames(), ", ")))
	case errors.Is(err, domain.ErrFormat):
		return textReply(fmt.Sprintf(usage, strings.Join(domain.FieldNames(), ", ")))
	case application.IsNotFound(err):
		return textReply(notFoundText(cmd.Target))
	case errors.Is(err, domain.ErrRemoteRead):
		logger.Error().Err(err).Str("op", "update").Str("target", cmd.Target.String()).Msg("resolve update target")
		return textReply(msgReadFailed)
	case err != nil:
		logger.Error().Err(err).Str("op", "update").Str("target", cmd.Target.String()).Msg("update record")
		return textReply(msgWriteFailed)
	}

	logger.Info().
		Str("op", "update").
		Str("record_id", string(result.ID)).
		Str("field", string(result.Field)).
		Msg("record updated")
	return textReply(fmt.Sprintf(msgUpdated, result.ID, result.Field, result.Value))
}

func (r *Router) promptDelete(ctx context.Context, conv domain.ConversationID, target application.Target) []Reply {
	logger := zerolog.Ctx(ctx)

	pending, err := r.deletions.Prompt(ctx, conv, target)
	switch {
	case application.IsNotFound(err):
		return textReply(notFoundText(target))
	case errors.Is(err, domain.ErrRemoteRead):
		logger.Error().Err(err).Str("op", "delete").Str("target", target.String()).Msg("resolve delete target")
		return textReply(msgReadFailed)
	case err != nil:
		logger.Error().Err(err).Str("op", "delete").Str("target", target.String()).Msg("prompt deletion")
		return textReply(msgInternal)
	}

	token := string(pending.Token)
	yes, yesFits := encodeCallback(callbackDelete, deleteYes, token)
	no, noFits := encodeCallback(callbackDelete, deleteNo, token)
	if !yesFits || !noFits {
		logger.Warn().Str("op", "delete").Str("target", token).Msg("record id too long for confirm buttons")
		if _, err := r.deletions.Cancel(ctx, conv, token); err != nil {
			logger.Warn().Err(err).Msg("drop pending deletion")
		}
		return textReply(msgInternal)
	}

	return []Reply{{
		Text: fmt.Sprintf(msgDeletePrompt, formatRecord(pending.Snapshot)),
		Buttons: [][]Button{{
			{Label: "✅ Yes, delete", Data: yes},
			{Label: "❌ No", Data: no},
		}},
	}}
}

func (r *Router) confirmDelete(ctx context.Context, conv domain.ConversationID, token string) []Reply {
	logger := zerolog.Ctx(ctx)

	pending, err := r.deletions.Confirm(ctx, conv, token)
	switch {
	case errors.Is(err, domain.ErrNoPendingDeletion), errors.Is(err, domain.ErrFormat):
		logger.Info().Err(err).Str("op", "delete").Str("target", token).Msg("confirm without pending deletion")
		return textReply(msgNoPending)
	case application.IsNotFound(err):
		return textReply(fmt.Sprintf(msgDeleteGone, pending.Token))
	case err != nil:
		logger.Error().Err(err).Str("op", "delete").Str("target", token).Msg("delete record")
		return textReply(msgWriteFailed)
	}

	logger.Info().Str("op", "delete").Str("record_id", string(pending.Token)).Msg("record deleted")
	return textReply(fmt.Sprintf(msgDeleted, pending.Token))
}

func (r *Router) keepRecord(ctx context.Context, conv domain.ConversationID, token string) []Reply {
	pending, err := r.deletions.Cancel(ctx, conv, token)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("op", "delete").Str("target", token).Msg("cancel without pending deletion")
		return textReply(msgNoPending)
	}
	return textReply(fmt.Sprintf(msgDeleteKept, pending.Token))
}

func (r *Router) export(ctx context.Context) []Reply {
	logger := zerolog.Ctx(ctx)

	var buf bytes.Buffer
	rows, err := r.exporter.Export(ctx, &buf)
	switch {
	case errors.Is(err, domain.ErrNothingToExport):
		return textReply(msgNothingExport)
	case err != nil:
		logger.Error().Err(err).Str("op", "export").Msg("export records")
		return textReply(msgReadFailed)
	}

	logger.Info().Str("op", "export").Int("rows", rows).Msg("records exported")
	return []Reply{{
		Text: fmt.Sprintf(msgExported, rows),
		Document: &Document{
			Name: application.ExportFileName(r.clock.Now()),
			Data: buf.Bytes(),
		},
	}}
}

func stepReply(step application.Step) Reply {
	reply := Reply{Text: step.Prompt}
	if step.State == domain.StateComplete && step.Record.ID != "" {
		reply.Text = fmt.Sprintf("%s (ID %s)", step.Prompt, step.Record.ID)
	}

	choices := make([]choice, 0, len(step.Choices))
	for _, c := range step.Choices {
		choices = append(choices, choice{label: c.Label, value: c.Value})
	}
	reply.Buttons = buttonRows(callbackStep, choices)

	return reply
}

func notFoundText(target application.Target) string {
	if target.Last {
		return msgNotFoundLast
	}
	return fmt.Sprintf(msgNotFoundID, target.ID)
}

func textReply(text string) []Reply {
	return []Reply{{Text: text}}
}

// nextWord splits off the first whitespace-separated word, keeping the spacing of
// the remainder intact.
func nextWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
