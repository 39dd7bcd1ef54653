package bot

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// recordTable is an ordered in-memory RecordStore; later inserts count as newer.
type recordTable struct {
	mu        sync.Mutex
	records   []domain.Record
	nextID    int
	createErr error
	readErr   error
}

var _ ports.RecordStore = (*recordTable)(nil)

func (s *recordTable) seed(records ...domain.Record) {
	for _, record := range records {
		_, _ = s.Create(context.Background(), record)
	}
}

func (s *recordTable) all() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Record(nil), s.records...)
}

func (s *recordTable) Create(_ context.Context, record domain.Record) (domain.RecordID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return "", s.createErr
	}
	s.nextID++
	record.ID = domain.RecordID(strconv.Itoa(s.nextID))
	s.records = append(s.records, record)
	return record.ID, nil
}

func (s *recordTable) LatestByFilter(_ context.Context, typeFilter string) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr != nil {
		return domain.Record{}, s.readErr
	}
	for i := len(s.records) - 1; i >= 0; i-- {
		if typeFilter == "" || strings.EqualFold(s.records[i].MaintenanceType, typeFilter) {
			return s.records[i], nil
		}
	}
	return domain.Record{}, domain.ErrRecordNotFound
}

func (s *recordTable) FetchByID(_ context.Context, id domain.RecordID) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readErr != nil {
		return domain.Record{}, s.readErr
	}
	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return domain.Record{}, fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
}

func (s *recordTable) UpdateField(_ context.Context, id domain.RecordID, field domain.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID == id {
			s.records[i] = record.With(field, value)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (s *recordTable) Delete(_ context.Context, id domain.RecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (s *recordTable) ListAll(context.Context) iter.Seq2[domain.Record, error] {
	records := s.all()
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	return func(yield func(domain.Record, error) bool) {
		if s.readErr != nil {
			yield(domain.Record{}, s.readErr)
			return
		}
		for _, record := range records {
			if !yield(record, nil) {
				return
			}
		}
	}
}
