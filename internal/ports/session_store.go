package ports

import (
	"context"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// SessionStore keeps in-flight guided conversations. Get returns domain.ErrNoSession
// when the conversation has none. Delete is idempotent.
type SessionStore interface {
	Get(ctx context.Context, id domain.ConversationID) (domain.Session, error)
	Put(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id domain.ConversationID) error
}

// DeletionStore keeps the delete prompts a conversation has been shown and not yet
// answered. Take removes and returns the entry, or domain.ErrNoPendingDeletion.
type DeletionStore interface {
	Save(ctx context.Context, id domain.ConversationID, pending domain.PendingDeletion) error
	Take(ctx context.Context, id domain.ConversationID, token domain.RecordID) (domain.PendingDeletion, error)
}
