package application

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type inMemorySessions struct {
	mu       sync.Mutex
	sessions map[domain.ConversationID]domain.Session
}

func newInMemorySessions() *inMemorySessions {
	return &inMemorySessions{sessions: map[domain.ConversationID]domain.Session{}}
}

func (s *inMemorySessions) Get(_ context.Context, id domain.ConversationID) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	return session, nil
}

func (s *inMemorySessions) Put(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ConversationID] = session
	return nil
}

func (s *inMemorySessions) Delete(_ context.Context, id domain.ConversationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type inMemoryDeletions struct {
	pending map[domain.ConversationID]map[domain.RecordID]domain.PendingDeletion
}

func newInMemoryDeletions() *inMemoryDeletions {
	return &inMemoryDeletions{pending: map[domain.ConversationID]map[domain.RecordID]domain.PendingDeletion{}}
}

func (d *inMemoryDeletions) Save(_ context.Context, id domain.ConversationID, pending domain.PendingDeletion) error {
	if d.pending[id] == nil {
		d.pending[id] = map[domain.RecordID]domain.PendingDeletion{}
	}
	d.pending[id][pending.Token] = pending
	return nil
}

func (d *inMemoryDeletions) Take(_ context.Context, id domain.ConversationID, token domain.RecordID) (domain.PendingDeletion, error) {
	pending, ok := d.pending[id][token]
	if !ok {
		return domain.PendingDeletion{}, domain.ErrNoPendingDeletion
	}
	delete(d.pending[id], token)
	return pending, nil
}

func recordsSeq(records ...domain.Record) iter.Seq2[domain.Record, error] {
	return func(yield func(domain.Record, error) bool) {
		for _, record := range records {
			if !yield(record, nil) {
				return
			}
		}
	}
}

func failingSeq(err error, before ...domain.Record) iter.Seq2[domain.Record, error] {
	return func(yield func(domain.Record, error) bool) {
		for _, record := range before {
			if !yield(record, nil) {
				return
			}
		}
		yield(domain.Record{}, err)
	}
}
