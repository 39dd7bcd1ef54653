package ports

import (
	"context"
	"iter"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
)

// RecordStore is the remote table of maintenance records. Implementations hold no
// state between calls and never cache.
type RecordStore interface {
	Create(ctx context.Context, record domain.Record) (domain.RecordID, error)
	// LatestByFilter returns the most recently created record whose maintenance type
	// equals typeFilter case-insensitively. An empty filter matches every record.
	LatestByFilter(ctx context.Context, typeFilter string) (domain.Record, error)
	FetchByID(ctx context.Context, id domain.RecordID) (domain.Record, error)
	UpdateField(ctx context.Context, id domain.RecordID, field domain.Field, value string) error
	Delete(ctx context.Context, id domain.RecordID) error
	// ListAll yields every record ordered by date, newest first. The sequence can
	// only be ranged over once.
	ListAll(ctx context.Context) iter.Seq2[domain.Record, error]
}
