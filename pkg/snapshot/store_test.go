package snapshot

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSaveLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, "a", []byte("frame"), time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := s.Load(ctx, "a")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "frame" {
		t.Errorf("data = %q, want frame", data)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Load(context.Background(), "nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Save(ctx, "a", []byte("x"), time.Now().Add(-time.Second))

	if _, err := s.Load(ctx, "a"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound (expired)", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (expired entry reaped)", s.Len())
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Save(ctx, "a", []byte("x"), time.Time{})
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "a"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	// Deleting again is fine.
	if err := s.Delete(ctx, "a"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("orig")
	s.Save(ctx, "a", buf, time.Time{})
	buf[0] = 'X'

	data, _ := s.Load(ctx, "a")
	if string(data) != "orig" {
		t.Errorf("data = %q, want orig (store must copy)", data)
	}
}
