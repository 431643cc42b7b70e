package storage

import (
	"errors"
	"fmt"
	"sort"
	"testing"
)

func TestPrefixDB_NamespacesAreIsolated(t *testing.T) {
	inner := NewMemory()
	records := NewPrefixDB(inner, []byte("r/"))
	index := NewPrefixDB(inner, []byte("s/"))

	records.Put([]byte("id1"), []byte("record"))
	index.Put([]byte("id1"), []byte("pointer"))

	got, err := records.Get([]byte("id1"))
	if err != nil || string(got) != "record" {
		t.Fatalf("records.Get = %q, %v", got, err)
	}
	got, err = index.Get([]byte("id1"))
	if err != nil || string(got) != "pointer" {
		t.Fatalf("index.Get = %q, %v", got, err)
	}

	// The raw inner key carries the namespace.
	raw, err := inner.Get([]byte("r/id1"))
	if err != nil || string(raw) != "record" {
		t.Fatalf("inner.Get(r/id1) = %q, %v", raw, err)
	}
	if ok, _ := records.Has([]byte("s/id1")); ok {
		t.Fatal("records namespace should not see index keys")
	}
}

func TestPrefixDB_ForEachStripsNamespace(t *testing.T) {
	db := NewPrefixDB(NewMemory(), []byte("h/"))
	db.Put([]byte("w1/2"), []byte("b"))
	db.Put([]byte("w1/1"), []byte("a"))
	db.Put([]byte("w2/1"), []byte("c"))

	var keys []string
	err := db.ForEach([]byte("w1/"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	sort.Strings(keys)
	if fmt.Sprint(keys) != "[w1/1 w1/2]" {
		t.Fatalf("ForEach keys = %v, want [w1/1 w1/2]", keys)
	}
}

func TestPrefixDB_ForEachStopsOnError(t *testing.T) {
	db := NewPrefixDB(NewMemory(), []byte("p/"))
	for i := 0; i < 5; i++ {
		db.Put([]byte(fmt.Sprintf("k%d", i)), []byte("v"))
	}

	stop := errors.New("stop")
	calls := 0
	err := db.ForEach(nil, func(key, value []byte) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("ForEach err=%v calls=%d, want stop after 1 call", err, calls)
	}
}

func TestPrefixDB_WriteIsNamespaced(t *testing.T) {
	inner := NewMemory()
	a := NewPrefixDB(inner, []byte("a/"))
	b := NewPrefixDB(inner, []byte("b/"))
	a.Put([]byte("old"), []byte("v"))
	b.Put([]byte("old"), []byte("keep"))

	var batch Batch
	batch.Put([]byte("k1"), []byte("v1"))
	batch.Delete([]byte("old"))
	if err := a.Write(&batch); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, err := inner.Get([]byte("a/k1")); err != nil || string(got) != "v1" {
		t.Errorf("inner a/k1 = %q, %v; want v1", got, err)
	}
	if ok, _ := a.Has([]byte("old")); ok {
		t.Error("a/old survived batch delete")
	}
	if got, err := b.Get([]byte("old")); err != nil || string(got) != "keep" {
		t.Errorf("b.Get(old) = %q, %v; want keep", got, err)
	}
}

func TestPrefixDB_CloseLeavesInnerOpen(t *testing.T) {
	inner := NewMemory()
	db := NewPrefixDB(inner, []byte("x/"))
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := inner.Put([]byte("still"), []byte("open")); err != nil {
		t.Fatalf("inner closed by PrefixDB.Close: %v", err)
	}
}
