package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/internal/storage"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testRecord(sender string, minutes int) Record {
	return Record{
		SenderWallet:   sender,
		TokenMint:      "SOL",
		RecipientCount: 3,
		TotalAmount:    decimal.RequireFromString("4.5"),
		DeveloperFee:   decimal.RequireFromString("0.0045"),
		Status:         StatusConfirmed,
		Signatures:     []string{fmt.Sprintf("sig-%d", minutes)},
		Timestamp:      baseTime.Add(time.Duration(minutes) * time.Minute),
	}
}

// runStoreSuite runs the shared behaviour tests against a Store.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("NewestFirst", func(t *testing.T) {
		s := newStore(t)
		for _, m := range []int{5, 1, 9, 3} {
			if _, err := s.Save(ctx, testRecord("alice", m)); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}
		got, err := s.List(ctx, "alice", 10)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("List returned %d records, want 4", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Timestamp.After(got[i-1].Timestamp) {
				t.Errorf("record %d (%v) is newer than record %d (%v)", i, got[i].Timestamp, i-1, got[i-1].Timestamp)
			}
		}
		if got[0].Signatures[0] != "sig-9" {
			t.Errorf("newest = %v, want sig-9", got[0].Signatures)
		}
	})

	t.Run("LimitRespected", func(t *testing.T) {
		s := newStore(t)
		for m := 0; m < 7; m++ {
			s.Save(ctx, testRecord("bob", m))
		}
		got, err := s.List(ctx, "bob", 3)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("List(limit=3) returned %d", len(got))
		}
		if got[0].Signatures[0] != "sig-6" || got[2].Signatures[0] != "sig-4" {
			t.Errorf("unexpected page: %v .. %v", got[0].Signatures, got[2].Signatures)
		}
	})

	t.Run("SendersIsolated", func(t *testing.T) {
		s := newStore(t)
		s.Save(ctx, testRecord("carol", 1))
		s.Save(ctx, testRecord("carol/x", 2))
		s.Save(ctx, testRecord("carolyn", 3))

		got, _ := s.List(ctx, "carol", 10)
		if len(got) != 1 || got[0].SenderWallet != "carol" {
			t.Errorf("List(carol) = %+v, want only carol's record", got)
		}
		none, err := s.List(ctx, "dave", 10)
		if err != nil || len(none) != 0 || none == nil {
			t.Errorf("List(dave) = %v, %v; want empty non-nil", none, err)
		}
	})

	t.Run("SaveAssignsIDAndGetRoundTrips", func(t *testing.T) {
		s := newStore(t)
		saved, err := s.Save(ctx, Record{SenderWallet: "erin", TokenMint: "USDC"})
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if saved.ID == "" || saved.Status != StatusPending {
			t.Fatalf("saved = %+v, want ID and pending status", saved)
		}
		got, err := s.Get(ctx, saved.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.SenderWallet != "erin" || !got.Timestamp.Equal(saved.Timestamp) {
			t.Errorf("Get = %+v, want %+v", got, saved)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
		}
	})

	t.Run("InvalidRecordRejected", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Save(ctx, Record{TokenMint: "SOL"}); err == nil {
			t.Fatal("Save without sender succeeded")
		}
		got, _ := s.List(ctx, "", 10)
		if len(got) != 0 {
			t.Errorf("rejected record was indexed: %+v", got)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		s := newStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := s.Save(cctx, testRecord("frank", 1)); !errors.Is(err, context.Canceled) {
			t.Errorf("Save(canceled) err = %v, want context.Canceled", err)
		}
	})

	t.Run("ResaveMovesRecord", func(t *testing.T) {
		s := newStore(t)
		first := testRecord("ivan", 1)
		first.ID = "same"
		if _, err := s.Save(ctx, first); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if got, _ := s.List(ctx, "ivan", 10); len(got) != 1 {
			t.Fatalf("List(ivan) before re-save = %d records, want 1", len(got))
		}

		for _, m := range []int{2, 3} {
			again := testRecord("judy", m)
			again.ID = "same"
			if _, err := s.Save(ctx, again); err != nil {
				t.Fatalf("re-Save: %v", err)
			}
		}

		if got, err := s.List(ctx, "ivan", 10); err != nil || len(got) != 0 {
			t.Errorf("List(ivan) = %+v, %v; want no records", got, err)
		}
		got, err := s.List(ctx, "judy", 10)
		if err != nil {
			t.Fatalf("List(judy): %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("List(judy) = %d records, want 1", len(got))
		}
		if got[0].SenderWallet != "judy" || got[0].Signatures[0] != "sig-3" {
			t.Errorf("List(judy)[0] = %+v", got[0])
		}
	})
}

func TestIndexStore_Memory(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		return NewIndexStore(storage.NewMemory())
	})
}

func TestIndexStore_Badger(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		db, err := storage.NewBadger(t.TempDir())
		if err != nil {
			t.Fatalf("NewBadger: %v", err)
		}
		t.Cleanup(func() { db.Close() })
		return NewIndexStore(db)
	})
}

func TestIndexStore_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	s := NewIndexStore(storage.NewMemory())
	for m := 0; m < DefaultLimit+5; m++ {
		s.Save(ctx, testRecord("gina", m))
	}
	got, err := s.List(ctx, "gina", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != DefaultLimit {
		t.Errorf("List(limit=0) returned %d, want %d", len(got), DefaultLimit)
	}
}

func TestIndexStore_SharesDatabase(t *testing.T) {
	db := storage.NewMemory()
	db.Put([]byte("r/other"), []byte("not a record"))

	s := NewIndexStore(db)
	if _, err := s.Get(context.Background(), "other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("history namespace leaked: err = %v", err)
	}
}

func TestIndexStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "history")

	db, err := storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger: %v", err)
	}
	saved, err := NewIndexStore(db).Save(ctx, testRecord("hank", 1))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := NewIndexStore(db).List(ctx, "hank", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != saved.ID {
		t.Fatalf("after reopen List = %+v, want [%s]", got, saved.ID)
	}
	if !got[0].TotalAmount.Equal(decimal.RequireFromString("4.5")) {
		t.Errorf("TotalAmount = %s, want 4.5", got[0].TotalAmount)
	}
}
