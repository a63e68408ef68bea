package cache

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"
)

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	c, err := New(DriverMemory)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	tables := map[string]string{
		"":    "",
		"abc": "abc",
		"123": "123",
	}

	for k, v := range tables {
		if _, err := c.Get(ctx, k); err != ErrMiss {
			t.Fatalf("%q: want miss, got %v", k, err)
		}
		if err := c.Set(ctx, k, []byte(v)); err != nil {
			t.Fatal(err)
		}
		got, err := c.Get(ctx, k)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != v {
			t.Fatalf("%q: want %q, got %q", k, v, got)
		}
	}
}

func TestMemoryEvict(t *testing.T) {
	ctx := context.Background()
	m := newMemory(2, time.Minute)

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))
	m.Get(ctx, "a") // b becomes the oldest
	m.Set(ctx, "c", []byte("3"))

	if m.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", m.Len())
	}
	if _, err := m.Get(ctx, "b"); err != ErrMiss {
		t.Fatalf("b should be evicted, got %v", err)
	}
	for _, k := range []string{"a", "c"} {
		if _, err := m.Get(ctx, k); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
	}
}

func TestMemoryExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := newMemory(8, time.Second)
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("v"))
	if _, err := m.Get(ctx, "k"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Second)
	if _, err := m.Get(ctx, "k"); err != ErrMiss {
		t.Fatalf("want miss after ttl, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry not removed")
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := New("memcached"); err == nil {
		t.Fatal("want error for unknown driver")
	}
}

// 需要本地redis, 设置 REDIS_ADDR 后运行
func TestRedisCRUD(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	ctx := context.Background()
	c, err := New(DriverRedis, Redis(addr, os.Getenv("REDIS_PASSWORD"), db), Prefix("mcr:test:"), TTL(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := strconv.FormatInt(time.Now().UnixNano(), 10)
	if _, err := c.Get(ctx, key); err != ErrMiss {
		t.Fatalf("want miss, got %v", err)
	}
	if err := c.Set(ctx, key, []byte("value")); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "value" {
		t.Fatalf("want value, got %q", got)
	}
}
