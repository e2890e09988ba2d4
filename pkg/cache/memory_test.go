package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(10))
	defer mc.Close()
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	if err := mc.Set(ctx, "asset:bitcoin", payload{Name: "Bitcoin", Price: 52000}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if err := mc.Get(ctx, "asset:bitcoin", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Bitcoin" || got.Price != 52000 {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var dest string
	err := mc.Get(context.Background(), "missing", &dest)
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", "v", time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var dest string
	if err := mc.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expiry miss, got %v", err)
	}
}

func TestMemoryCacheDeleteByPattern(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	_ = mc.Set(ctx, "markets:list:USD:1", "a", time.Minute)
	_ = mc.Set(ctx, "markets:list:EUR:1", "b", time.Minute)
	_ = mc.Set(ctx, "events:snapshot", "c", time.Minute)

	if err := mc.DeleteByPattern(ctx, "markets:*"); err != nil {
		t.Fatalf("delete by pattern: %v", err)
	}

	if ok, _ := mc.Exists(ctx, "markets:list:USD:1"); ok {
		t.Fatalf("expected markets keys purged")
	}
	if ok, _ := mc.Exists(ctx, "events:snapshot"); !ok {
		t.Fatalf("expected events key retained")
	}
}
