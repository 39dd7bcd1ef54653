package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

type RecordService struct {
	store ports.RecordStore
}

func NewRecordService(store ports.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// QuickEntry parses a one-line entry and creates it. Nothing is sent to the store
// when the payload is malformed.
func (s *RecordService) QuickEntry(ctx context.Context, payload string) (domain.Record, error) {
	record, err := ParseQuickEntry(payload)
	if err != nil {
		return domain.Record{}, err
	}

	id, err := s.store.Create(ctx, record)
	if err != nil {
		return domain.Record{}, fmt.Errorf("create record: %w", err)
	}
	record.ID = id

	return record, nil
}

// ViewLast returns the latest record of the given maintenance type. An empty filter
// or "latest" selects the latest record overall.
func (s *RecordService) ViewLast(ctx context.Context, filter string) (domain.Record, error) {
	filter = NormalizeFilter(filter)

	record, err := s.store.LatestByFilter(ctx, filter)
	if err != nil {
		return domain.Record{}, fmt.Errorf("latest record for %q: %w", filterLabel(filter), err)
	}

	return record, nil
}

func (s *RecordService) Update(ctx context.Context, cmd UpdateCommand) (UpdateResult, error) {
	field, err := domain.ParseField(cmd.Field)
	if err != nil {
		return UpdateResult{}, err
	}

	value := strings.TrimSpace(cmd.Value)
	if value == "" {
		return UpdateResult{}, fmt.Errorf("%w: new value for %s is empty", domain.ErrFormat, field)
	}

	id := cmd.Target.ID
	if cmd.Target.Last {
		latest, err := s.store.LatestByFilter(ctx, "")
		if err != nil {
			return UpdateResult{}, fmt.Errorf("resolve last record: %w", err)
		}
		id = latest.ID
	}

	if err := s.store.UpdateField(ctx, id, field, value); err != nil {
		return UpdateResult{}, fmt.Errorf("update %s of record %s: %w", field, id, err)
	}

	return UpdateResult{ID: id, Field: field, Value: value}, nil
}

func (s *RecordService) resolve(ctx context.Context, target Target) (domain.Record, error) {
	if target.Last {
		record, err := s.store.LatestByFilter(ctx, "")
		if err != nil {
			return domain.Record{}, fmt.Errorf("resolve last record: %w", err)
		}
		return record, nil
	}

	record, err := s.store.FetchByID(ctx, target.ID)
	if err != nil {
		return domain.Record{}, fmt.Errorf("fetch record %s: %w", target.ID, err)
	}
	return record, nil
}

func NormalizeFilter(filter string) string {
	filter = strings.TrimSpace(filter)
	if strings.EqualFold(filter, domain.LatestFilter) {
		return ""
	}
	return filter
}

func filterLabel(filter string) string {
	if filter == "" {
		return domain.LatestFilter
	}
	return filter
}

// IsNotFound reports whether err means the lookup target does not exist, as opposed
// to the store being unreachable.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
