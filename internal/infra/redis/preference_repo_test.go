package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"nexgen-pricing/internal/domain/model"
)

type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Ping(context.Context) error { return nil }

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	f.data[key] = value.(string)
	f.ttls[key] = expiration
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Close() error { return nil }

func TestPreferenceRepo_AbsentIsZero(t *testing.T) {
	t.Parallel()
	repo := NewPreferenceRepo(newFakeRedis(), 0)

	p, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !p.IsZero() {
		t.Fatalf("absent visitor: got %+v, want zero", p)
	}
}

func TestPreferenceRepo_ProvisionalThenExplicit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPreferenceRepo(newFakeRedis(), 0)

	// Locale inference writes the currency only.
	if err := repo.Set(ctx, "v1", model.CurrencyINR, false); err != nil {
		t.Fatalf("Set provisional: %v", err)
	}
	p, err := repo.Get(ctx, "v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Currency != model.CurrencyINR || p.HasChosen {
		t.Fatalf("provisional preference: %+v", p)
	}

	// An explicit choice marks the flag.
	if err := repo.Set(ctx, "v1", model.CurrencyUSD, true); err != nil {
		t.Fatalf("Set explicit: %v", err)
	}
	p, err = repo.Get(ctx, "v1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Currency != model.CurrencyUSD || !p.HasChosen {
		t.Fatalf("explicit preference: %+v", p)
	}
}

func TestPreferenceRepo_KeysAreScopedPerVisitor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPreferenceRepo(newFakeRedis(), 0)

	if err := repo.Set(ctx, "a", model.CurrencyINR, true); err != nil {
		t.Fatal(err)
	}
	p, err := repo.Get(ctx, "b")
	if err != nil {
		t.Fatalf("Get other visitor: %v", err)
	}
	if !p.IsZero() {
		t.Fatalf("visitor b sees a's preference: %+v", p)
	}
}

func TestPreferenceRepo_TTLPassedThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fake := newFakeRedis()
	repo := NewPreferenceRepo(fake, 24*time.Hour)

	if err := repo.Set(ctx, "v", model.CurrencyUSD, true); err != nil {
		t.Fatal(err)
	}
	for key, ttl := range fake.ttls {
		if ttl != 24*time.Hour {
			t.Fatalf("key %q written with ttl %v, want 24h", key, ttl)
		}
	}
}

func TestPreferenceRepo_GarbageCurrencyIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fake := newFakeRedis()
	repo := NewPreferenceRepo(fake, 0)

	fake.data["pref:v:currency"] = "DOGE"
	p, err := repo.Get(ctx, "v")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Currency != "" {
		t.Fatalf("unparseable stored currency should be dropped, got %q", p.Currency)
	}
}
