package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheTypedDestination(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	type record struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	stored := []record{{Name: "a", Value: 1.5}, {Name: "b", Value: 2.5}}

	if err := mc.Set(context.Background(), "k", stored, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []record
	if err := mc.Get(context.Background(), "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].Value != 2.5 {
		t.Errorf("unexpected round trip: %+v", got)
	}
}

func TestMemoryCacheStringDestination(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	if err := mc.Set(context.Background(), "k", "hello", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got string
	if err := mc.Get(context.Background(), "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var got string
	if err := mc.Get(context.Background(), "absent", &got); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}
