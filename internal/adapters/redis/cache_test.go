package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "hotel_quoter/internal/adapters/redis"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	type payload struct {
		Name   string `json:"name"`
		Nights int    `json:"nights"`
	}
	in := payload{Name: "quote", Nights: 3}

	if err := c.Set(ctx, "quote:abc", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out payload
	ok, err := c.Get(ctx, "quote:abc", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	var out map[string]any
	ok, err := c.Get(ctx, "quote:nope", &out)
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestCacheDel(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "quote:gone", "x", 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "quote:gone"); err != nil {
		t.Fatalf("del: %v", err)
	}
	var out string
	if ok, _ := c.Get(ctx, "quote:gone", &out); ok {
		t.Fatalf("expected key deleted")
	}
}
