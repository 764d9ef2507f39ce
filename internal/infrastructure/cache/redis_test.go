package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_ConnectsAndSelectsDB(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// Non-zero DB to verify it is passed through
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	// round-trip the kind of entry the idempotency layer stores
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := "idemp:bf:post:/api/payments:test"
	if err := c.SetNX(ctx, key, `{"in_progress":true}`, time.Minute).Err(); err != nil {
		t.Fatalf("SETNX err: %v", err)
	}
	v, err := c.Get(ctx, key).Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != `{"in_progress":true}` {
		t.Fatalf("GET value = %q", v)
	}
}

func TestOpenRedis_DeadServerFailsStartup(t *testing.T) {
	// Unresolvable host: Ping must fail so main aborts before serving
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}
