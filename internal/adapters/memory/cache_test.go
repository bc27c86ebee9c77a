package memory

import (
	"context"
	"testing"
	"time"
)

func TestCacheEntryExpiresAfterTTL(t *testing.T) {
	c := NewCache()
	ctx := context.Background()

	if err := c.Set(ctx, "index:page:1", "payload", 20*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if val, ok, _ := c.Get(ctx, "index:page:1"); !ok || val != "payload" {
		t.Fatalf("expected a hit before expiry, got ok=%v val=%q", ok, val)
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "index:page:1"); ok {
		t.Fatal("expected a miss after the TTL passed")
	}
}

func TestCacheClearDropsAllEntries(t *testing.T) {
	c := NewCache()
	ctx := context.Background()

	for _, key := range []string{"index:page:1", "index:page:2"} {
		if err := c.Set(ctx, key, "payload", time.Minute); err != nil {
			t.Fatalf("set %s failed: %v", key, err)
		}
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	for _, key := range []string{"index:page:1", "index:page:2"} {
		if _, ok, _ := c.Get(ctx, key); ok {
			t.Fatalf("expected %s to be gone after clear", key)
		}
	}
}
