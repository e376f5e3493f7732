package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestFixedWindowAllow(t *testing.T) {
	mock := newMockCmdable()
	client := &Client{store: mock}

	allowed, count, err := client.FixedWindowAllow(context.Background(), "submit", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !allowed || count != 1 {
		t.Fatalf("first call allowed=%v count=%d", allowed, count)
	}

	if _, _, err := client.FixedWindowAllow(context.Background(), "submit", 2, time.Minute); err != nil {
		t.Fatalf("allow: %v", err)
	}

	allowed, count, err = client.FixedWindowAllow(context.Background(), "submit", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed || count != 3 {
		t.Fatalf("third call allowed=%v count=%d, want rejection", allowed, count)
	}
}

func TestAcquireSubmissionReplay(t *testing.T) {
	mock := newMockCmdable()
	client := &Client{store: mock}

	first, err := client.AcquireSubmission(context.Background(), "shop-1", "tok-abc", 9500, 10*time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !first {
		t.Fatal("first submission should acquire the guard")
	}

	second, err := client.AcquireSubmission(context.Background(), "shop-1", "tok-abc", 9500, 10*time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if second {
		t.Fatal("identical submission should be seen as a replay")
	}

	// A different offered price is a new submission, not a replay.
	other, err := client.AcquireSubmission(context.Background(), "shop-1", "tok-abc", 9000, 10*time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !other {
		t.Fatal("different price should acquire its own guard")
	}
}

func TestAcquireSubmissionRequiresIdentity(t *testing.T) {
	client := &Client{store: newMockCmdable()}
	if _, err := client.AcquireSubmission(context.Background(), "", "tok", 100, time.Second); err == nil {
		t.Fatal("expected error for missing shop id")
	}
	if _, err := client.AcquireSubmission(context.Background(), "shop", "", 100, time.Second); err == nil {
		t.Fatal("expected error for missing cart token")
	}
}

func TestLockLifecycle(t *testing.T) {
	mock := newMockCmdable()
	client := &Client{store: mock}

	got, err := client.AcquireLock(context.Background(), "offer-expiry", time.Minute)
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	if !got {
		t.Fatal("lock should be free initially")
	}

	got, err = client.AcquireLock(context.Background(), "offer-expiry", time.Minute)
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	if got {
		t.Fatal("held lock should not be re-acquired")
	}

	if err := client.ReleaseLock(context.Background(), "offer-expiry"); err != nil {
		t.Fatalf("release lock: %v", err)
	}
	got, err = client.AcquireLock(context.Background(), "offer-expiry", time.Minute)
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	if !got {
		t.Fatal("released lock should be acquirable again")
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.IdempotencyKey("scope", "id"); got != "prophet:idempotency:scope:id" {
		t.Fatalf("idempotency key %q", got)
	}
	if got := client.RateLimitKey("scope"); got != "prophet:rate_limit:scope" {
		t.Fatalf("rate limit key %q", got)
	}
	if got := client.CounterKey("hits"); got != "prophet:counter:hits" {
		t.Fatalf("counter key %q", got)
	}
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: make(map[string]string), counters: make(map[string]int64)}
}

type mockCmdable struct {
	values   map[string]string
	counters map[string]int64
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.values[key] = toString(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.values[key] = toString(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.counters[key]++
	return redis.NewIntResult(m.counters[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
		delete(m.counters, key)
	}
	return redis.NewIntResult(removed, nil)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return "1"
}
