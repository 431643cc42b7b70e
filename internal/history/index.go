package history

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	klog "github.com/Klingon-tech/multisend/internal/log"
	"github.com/Klingon-tech/multisend/internal/storage"
)

// IndexStore is a Store over a key-value database. Records are stored once
// by ID and indexed per sender under a reverse-timestamp key so that a
// sender's newest entries sort first.
//
// Key layout (all under the "h/" prefix namespace):
//
//	Record: "r/<id>"                              → JSON Record
//	Index:  "s/<hex sender>/<revNanos8><id>"     → id
//
// revNanos is ^UnixNano encoded as 8 big-endian bytes.
type IndexStore struct {
	mu     sync.Mutex // serializes Save's read of a prior record with its write
	db     storage.DB
	logger zerolog.Logger
}

// NewIndexStore creates a history store backed by db.
func NewIndexStore(db storage.DB) *IndexStore {
	return &IndexStore{
		db:     storage.NewPrefixDB(db, []byte("h/")),
		logger: klog.History,
	}
}

func recordKey(id string) []byte {
	return []byte("r/" + id)
}

// senderPrefix hex-encodes the sender so that one wallet's prefix can never
// match another's keys.
func senderPrefix(sender string) []byte {
	return []byte("s/" + hex.EncodeToString([]byte(sender)) + "/")
}

func indexKey(rec Record) []byte {
	prefix := senderPrefix(rec.SenderWallet)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ^uint64(rec.Timestamp.UnixNano()))
	key := append(prefix, buf[:]...)
	return append(key, rec.ID...)
}

// Save stores rec and indexes it under its sender.
func (s *IndexStore) Save(ctx context.Context, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("marshal record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var batch storage.Batch
	prev, err := s.load(rec.ID)
	switch {
	case err == nil:
		// Re-saving an ID replaces the record, so its old index entry goes.
		batch.Delete(indexKey(prev))
	case !errors.Is(err, ErrNotFound):
		return Record{}, err
	}
	batch.Put(recordKey(rec.ID), data)
	batch.Put(indexKey(rec), []byte(rec.ID))
	if err := s.db.Write(&batch); err != nil {
		return Record{}, fmt.Errorf("write record: %w", err)
	}

	s.logger.Debug().
		Str("id", rec.ID).
		Str("sender", rec.SenderWallet).
		Str("status", string(rec.Status)).
		Msg("History record saved")
	return rec, nil
}

// Get returns the record with the given ID.
func (s *IndexStore) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	return s.load(id)
}

func (s *IndexStore) load(id string) (Record, error) {
	data, err := s.db.Get(recordKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("corrupt record %s: %w", id, err)
	}
	return rec, nil
}

// List returns up to limit records for sender, newest first. A limit below 1
// means DefaultLimit.
func (s *IndexStore) List(ctx context.Context, sender string, limit int) ([]Record, error) {
	if limit < 1 {
		limit = DefaultLimit
	}

	type entry struct {
		key string
		id  string
	}
	var all []entry

	// ForEach order is backend specific (MemoryDB is a map), so collect and sort.
	err := s.db.ForEach(senderPrefix(sender), func(key, value []byte) error {
		all = append(all, entry{key: string(key), id: string(value)})
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].key < all[j].key
	})
	if len(all) > limit {
		all = all[:limit]
	}

	records := make([]Record, 0, len(all))
	for _, e := range all {
		rec, err := s.Get(ctx, e.id)
		if errors.Is(err, ErrNotFound) {
			continue // Dangling index entry.
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("id", e.id).Msg("Skipping unreadable history record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
