package server

import (
	"context"
	"testing"
	"time"
)

type countingSource struct {
	fetches int
	dump    string
}

func (s *countingSource) FetchDump(context.Context) (string, error) {
	s.fetches++
	return s.dump, nil
}

func TestDumpCache_ServesWithinTTL(t *testing.T) {
	src := &countingSource{dump: "Window, 0x1\n"}
	cache := NewDumpCache(src, time.Minute)

	for i := 0; i < 3; i++ {
		dump, err := cache.FetchDump(context.Background())
		if err != nil {
			t.Fatalf("FetchDump failed: %v", err)
		}
		if dump != src.dump {
			t.Errorf("unexpected dump: %q", dump)
		}
	}
	if src.fetches != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", src.fetches)
	}
}

func TestDumpCache_ZeroTTLDisablesCaching(t *testing.T) {
	src := &countingSource{dump: "Window, 0x1\n"}
	cache := NewDumpCache(src, 0)

	cache.FetchDump(context.Background())
	cache.FetchDump(context.Background())

	if src.fetches != 2 {
		t.Errorf("expected 2 upstream fetches with caching disabled, got %d", src.fetches)
	}
}

func TestDumpCache_Invalidate(t *testing.T) {
	src := &countingSource{dump: "Window, 0x1\n"}
	cache := NewDumpCache(src, time.Minute)

	cache.FetchDump(context.Background())
	cache.Invalidate()
	cache.FetchDump(context.Background())

	if src.fetches != 2 {
		t.Errorf("expected refetch after invalidation, got %d fetches", src.fetches)
	}
}
