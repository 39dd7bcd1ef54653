package application

import (
	"context"
	"fmt"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

// DeletionFlow guards deletes behind a prompt the user must confirm. The confirm
// token is the record id shown in the prompt.
type DeletionFlow struct {
	records *RecordService
	store   ports.RecordStore
	pending ports.DeletionStore
	clock   ports.Clock
}

func NewDeletionFlow(store ports.RecordStore, pending ports.DeletionStore, clock ports.Clock) *DeletionFlow {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &DeletionFlow{
		records: NewRecordService(store),
		store:   store,
		pending: pending,
		clock:   clock,
	}
}

// Prompt resolves the target and remembers it as pending. A missing record leaves
// no pending state behind.
func (f *DeletionFlow) Prompt(ctx context.Context, conv domain.ConversationID, target Target) (domain.PendingDeletion, error) {
	record, err := f.records.resolve(ctx, target)
	if err != nil {
		return domain.PendingDeletion{}, err
	}

	pending := domain.PendingDeletion{
		Token:    record.ID,
		Snapshot: record,
		IssuedAt: f.clock.Now(),
	}
	if err := f.pending.Save(ctx, conv, pending); err != nil {
		return domain.PendingDeletion{}, fmt.Errorf("save pending deletion: %w", err)
	}

	return pending, nil
}

// Confirm deletes the record behind rawToken if this conversation was prompted for
// it. The pending entry is consumed before the delete is sent, so a token works once.
func (f *DeletionFlow) Confirm(ctx context.Context, conv domain.ConversationID, rawToken string) (domain.PendingDeletion, error) {
	pending, err := f.take(ctx, conv, rawToken)
	if err != nil {
		return domain.PendingDeletion{}, err
	}

	if err := f.store.Delete(ctx, pending.Token); err != nil {
		return pending, fmt.Errorf("delete record %s: %w", pending.Token, err)
	}

	return pending, nil
}

// Cancel drops the pending deletion without touching the store.
func (f *DeletionFlow) Cancel(ctx context.Context, conv domain.ConversationID, rawToken string) (domain.PendingDeletion, error) {
	return f.take(ctx, conv, rawToken)
}

func (f *DeletionFlow) take(ctx context.Context, conv domain.ConversationID, rawToken string) (domain.PendingDeletion, error) {
	token, err := domain.ParseRecordID(rawToken)
	if err != nil {
		return domain.PendingDeletion{}, fmt.Errorf("%w: %w", domain.ErrFormat, err)
	}

	pending, err := f.pending.Take(ctx, conv, token)
	if err != nil {
		return domain.PendingDeletion{}, fmt.Errorf("confirm token %s: %w", token, err)
	}

	return pending, nil
}
