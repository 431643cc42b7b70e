package history

import "context"

// DefaultLimit is the number of records List returns when asked for none.
const DefaultLimit = 50

// Store saves and lists history records.
type Store interface {
	// Save normalizes, validates and stores rec, returning the stored copy.
	Save(ctx context.Context, rec Record) (Record, error)
	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// List returns up to limit records for sender, newest first.
	List(ctx context.Context, sender string, limit int) ([]Record, error)
}
