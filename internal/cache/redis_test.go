package cache

import (
	"context"
	"testing"
	"time"
)

// With no Redis client initialized the package runs on the process-local
// fallback store; these tests cover that degraded path.

func TestFallbackSetGetDelete(t *testing.T) {
	ctx := context.Background()

	if err := SetWithTTL(ctx, "reset:employee:EMP1", "123456:99", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok := Get(ctx, "reset:employee:EMP1")
	if !ok || value != "123456:99" {
		t.Fatalf("get = %q, %v", value, ok)
	}

	Delete(ctx, "reset:employee:EMP1")
	if _, ok := Get(ctx, "reset:employee:EMP1"); ok {
		t.Fatal("key survived delete")
	}
}

func TestFallbackOverwrite(t *testing.T) {
	ctx := context.Background()

	SetWithTTL(ctx, "reset:centre:c1", "first", time.Minute)
	SetWithTTL(ctx, "reset:centre:c1", "second", time.Minute)

	value, ok := Get(ctx, "reset:centre:c1")
	if !ok || value != "second" {
		t.Fatalf("get after overwrite = %q, %v", value, ok)
	}
}

func TestFallbackExpiry(t *testing.T) {
	ctx := context.Background()

	SetWithTTL(ctx, "reset:employee:EMP2", "code", -time.Second)
	if _, ok := Get(ctx, "reset:employee:EMP2"); ok {
		t.Fatal("expired key still readable")
	}
}
