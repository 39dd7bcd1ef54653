package application

import (
	"fmt"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

const TargetLast = "last"

// Target names the record an update or delete applies to: the latest record or a
// specific id.
type Target struct {
	Last bool
	ID   domain.RecordID
}

func ParseTarget(raw string) (Target, error) {
	if strings.EqualFold(strings.TrimSpace(raw), TargetLast) {
		return Target{Last: true}, nil
	}

	id, err := domain.ParseRecordID(raw)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %w", domain.ErrFormat, err)
	}
	return Target{ID: id}, nil
}

func (t Target) String() string {
	if t.Last {
		return TargetLast
	}
	return string(t.ID)
}

type UpdateCommand struct {
	Target Target
	Field  string
	Value  string
}

type UpdateResult struct {
	ID    domain.RecordID
	Field domain.Field
	Value string
}

// Choice is one button offered alongside a prompt.
type Choice struct {
	Label string
	Value string
}

func choicesOf(values []string) []Choice {
	if len(values) == 0 {
		return nil
	}
	choices := make([]Choice, 0, len(values))
	for _, value := range values {
		choices = append(choices, Choice{Label: value, Value: value})
	}
	return choices
}
