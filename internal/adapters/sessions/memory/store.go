package memory

import (
	"context"
	"sync"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

// Store keeps guided sessions and pending deletions in process memory. Everything is
// lost on restart.
type Store struct {
	mu        sync.Mutex
	sessions  map[domain.ConversationID]domain.Session
	deletions map[domain.ConversationID]map[domain.RecordID]domain.PendingDeletion
}

var (
	_ ports.SessionStore  = (*Store)(nil)
	_ ports.DeletionStore = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		sessions:  map[domain.ConversationID]domain.Session{},
		deletions: map[domain.ConversationID]map[domain.RecordID]domain.PendingDeletion{},
	}
}

func (s *Store) Get(ctx context.Context, id domain.ConversationID) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	session.Draft = session.Draft.Clone()

	return session, nil
}

func (s *Store) Put(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.Draft = session.Draft.Clone()
	s.sessions[session.ConversationID] = session

	return nil
}

func (s *Store) Delete(ctx context.Context, id domain.ConversationID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}

func (s *Store) Save(ctx context.Context, id domain.ConversationID, pending domain.PendingDeletion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byToken, ok := s.deletions[id]
	if !ok {
		byToken = map[domain.RecordID]domain.PendingDeletion{}
		s.deletions[id] = byToken
	}
	byToken[pending.Token] = pending

	return nil
}

func (s *Store) Take(ctx context.Context, id domain.ConversationID, token domain.RecordID) (domain.PendingDeletion, error) {
	if err := ctx.Err(); err != nil {
		return domain.PendingDeletion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.deletions[id][token]
	if !ok {
		return domain.PendingDeletion{}, domain.ErrNoPendingDeletion
	}

	delete(s.deletions[id], token)
	if len(s.deletions[id]) == 0 {
		delete(s.deletions, id)
	}

	return pending, nil
}

// Len reports the number of in-flight sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
