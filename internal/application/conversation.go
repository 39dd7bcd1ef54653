package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

var prompts = map[domain.State]string{
	domain.StateAwaitingDate:     "📅 Enter maintenance date or choose:",
	domain.StateAwaitingType:     "🔧 Select maintenance type or type your own:",
	domain.StateAwaitingPrice:    "💵 Enter price:",
	domain.StateAwaitingLocation: "📍 Select location or type your own:",
	domain.StateAwaitingRemarks:  "📝 Enter remarks:",
	domain.StateAwaitingMileage:  "📈 Enter total mileage:",
	domain.StateComplete:         "✅ Maintenance logged successfully!",
	domain.StateCancelled:        "🚫 Cancelled.",
}

// Step is what the conversation shows after handling one input.
type Step struct {
	State   domain.State
	Prompt  string
	Choices []Choice
	// Record is the created record once State is StateComplete.
	Record domain.Record
}

// Engine runs the guided /logstep conversation: one field per turn, in a fixed
// order, with the record written only after the last answer.
type Engine struct {
	sessions    ports.SessionStore
	store       ports.RecordStore
	clock       ports.Clock
	suggestions domain.Suggestions
}

func NewEngine(sessions ports.SessionStore, store ports.RecordStore, clock ports.Clock, suggestions domain.Suggestions) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Engine{
		sessions:    sessions,
		store:       store,
		clock:       clock,
		suggestions: suggestions.WithDefaults(),
	}
}

// Start begins a new conversation, discarding any unfinished one.
func (e *Engine) Start(ctx context.Context, conv domain.ConversationID) (Step, error) {
	session := domain.NewSession(conv, e.clock.Now())
	if err := e.sessions.Put(ctx, session); err != nil {
		return Step{}, fmt.Errorf("save session: %w", err)
	}

	return e.stepFor(session.State), nil
}

func (e *Engine) Active(ctx context.Context, conv domain.ConversationID) bool {
	_, err := e.sessions.Get(ctx, conv)
	return err == nil
}

// Handle feeds one answer into the conversation. Blank answers and selections that
// were not offered in the current state re-prompt without changing state. After
// the mileage answer the session is closed and the record created; a create
// failure is returned as the error together with a StateComplete step.
func (e *Engine) Handle(ctx context.Context, conv domain.ConversationID, input domain.Input) (Step, error) {
	session, err := e.sessions.Get(ctx, conv)
	if err != nil {
		return Step{}, err
	}

	field, ok := session.State.Field()
	if !ok {
		if err := e.sessions.Delete(ctx, conv); err != nil {
			return Step{}, fmt.Errorf("drop finished session: %w", err)
		}
		return Step{}, domain.ErrNoSession
	}

	value, accepted := e.accept(session.State, input)
	if !accepted {
		return e.stepFor(session.State), nil
	}

	session.Draft.Set(field, value)
	session.State = session.State.Next()

	if session.State != domain.StateComplete {
		if err := e.sessions.Put(ctx, session); err != nil {
			return Step{}, fmt.Errorf("save session: %w", err)
		}
		return e.stepFor(session.State), nil
	}

	return e.complete(ctx, session)
}

// Cancel ends the conversation without writing anything.
func (e *Engine) Cancel(ctx context.Context, conv domain.ConversationID) (Step, error) {
	if _, err := e.sessions.Get(ctx, conv); err != nil {
		return Step{}, err
	}
	if err := e.sessions.Delete(ctx, conv); err != nil {
		return Step{}, fmt.Errorf("delete session: %w", err)
	}

	return e.stepFor(domain.StateCancelled), nil
}

func (e *Engine) complete(ctx context.Context, session domain.Session) (Step, error) {
	record, err := session.Draft.Record()
	if err != nil {
		return Step{}, err
	}

	// The session ends here whatever Create returns.
	if err := e.sessions.Delete(ctx, session.ConversationID); err != nil {
		return Step{}, fmt.Errorf("delete session: %w", err)
	}

	step := e.stepFor(domain.StateComplete)
	id, err := e.store.Create(ctx, record)
	if err != nil {
		return step, fmt.Errorf("create record: %w", err)
	}
	record.ID = id
	step.Record = record

	return step, nil
}

func (e *Engine) accept(state domain.State, input domain.Input) (string, bool) {
	value := strings.TrimSpace(input.Value())
	if value == "" {
		return "", false
	}

	switch input.(type) {
	case domain.FreeText:
		return value, true
	case domain.Selection:
		if state == domain.StateAwaitingDate && value == domain.TodayChoice {
			return e.clock.Now().Format(domain.DateLayout), true
		}
		if slices.Contains(e.offered(state), value) {
			return value, true
		}
		return "", false
	default:
		return "", false
	}
}

func (e *Engine) offered(state domain.State) []string {
	switch state {
	case domain.StateAwaitingType:
		return e.suggestions.MaintenanceTypes
	case domain.StateAwaitingLocation:
		return e.suggestions.Locations
	default:
		return nil
	}
}

func (e *Engine) stepFor(state domain.State) Step {
	step := Step{State: state, Prompt: prompts[state]}
	if state == domain.StateAwaitingDate {
		step.Choices = []Choice{{Label: "Today", Value: domain.TodayChoice}}
		return step
	}
	step.Choices = choicesOf(e.offered(state))
	return step
}

// IsNoSession reports whether err means no guided conversation is running.
func IsNoSession(err error) bool {
	return errors.Is(err, domain.ErrNoSession)
}
