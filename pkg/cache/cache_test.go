package cache_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/vanik/pkg/cache"
)

// Connect is never called here, so every test runs against the in-memory
// fallback store.

func TestSetGetRoundTrip(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}

	if err := cache.Set("trip", payload{Name: "vanik", Count: 3}, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if !cache.Get("trip", &got) {
		t.Fatal("expected a cache hit")
	}
	if got.Name != "vanik" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestGetMiss(t *testing.T) {
	var dest string
	if cache.Get("never-set", &dest) {
		t.Error("expected a miss for an unknown key")
	}
}

func TestTTLExpiry(t *testing.T) {
	if err := cache.Set("short", "soon gone", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	var dest string
	if !cache.Get("short", &dest) {
		t.Fatal("value should be readable before the TTL passes")
	}

	time.Sleep(30 * time.Millisecond)
	if cache.Get("short", &dest) {
		t.Error("value should have expired")
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	if err := cache.Set("keep", 42, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	var dest int
	if !cache.Get("keep", &dest) || dest != 42 {
		t.Errorf("zero-TTL entry should persist, hit=%v dest=%d", cache.Get("keep", &dest), dest)
	}
}

func TestDel(t *testing.T) {
	if err := cache.Set("a", 1, 0); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := cache.Set("b", 2, 0); err != nil {
		t.Fatalf("set b: %v", err)
	}

	if err := cache.Del("a", "b"); err != nil {
		t.Fatalf("del: %v", err)
	}

	var dest int
	if cache.Get("a", &dest) || cache.Get("b", &dest) {
		t.Error("deleted keys should miss")
	}
}

func TestForget(t *testing.T) {
	if err := cache.Set("alias", "x", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Forget("alias"); err != nil {
		t.Fatalf("forget: %v", err)
	}

	var dest string
	if cache.Get("alias", &dest) {
		t.Error("forgotten key should miss")
	}
}

func TestFlush(t *testing.T) {
	if err := cache.Set("one", 1, 0); err != nil {
		t.Fatalf("set one: %v", err)
	}
	if err := cache.Set("two", 2, time.Minute); err != nil {
		t.Fatalf("set two: %v", err)
	}

	if err := cache.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	var dest int
	if cache.Get("one", &dest) || cache.Get("two", &dest) {
		t.Error("flushed store should miss every key")
	}
}
