package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo persists each visitor's currency/region choice in Redis
// under two keys, mirroring the two conceptual fields of the preference:
// the currency value and the explicit-choice flag.
type PreferenceRepo struct {
	client RedisClient
	ttl    time.Duration
}

// NewPreferenceRepo constructs the repo. ttl <= 0 keeps preferences forever.
func NewPreferenceRepo(client RedisClient, ttl time.Duration) *PreferenceRepo {
	if ttl < 0 {
		ttl = 0
	}
	return &PreferenceRepo{client: client, ttl: ttl}
}

func (r *PreferenceRepo) currencyKey(visitorID string) string {
	return fmt.Sprintf("pref:%s:currency", visitorID)
}

func (r *PreferenceRepo) chosenKey(visitorID string) string {
	return fmt.Sprintf("pref:%s:region_selected", visitorID)
}

func (r *PreferenceRepo) Get(ctx context.Context, visitorID string) (model.Preference, error) {
	var p model.Preference

	cur, err := r.client.Get(ctx, r.currencyKey(visitorID))
	switch {
	case errors.Is(err, redis.Nil):
		// absent store: empty preference, not an error
	case err != nil:
		return model.Preference{}, err
	default:
		if c, perr := model.ParseCurrency(cur); perr == nil {
			p.Currency = c
		}
	}

	chosen, err := r.client.Get(ctx, r.chosenKey(visitorID))
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return model.Preference{}, err
	default:
		p.HasChosen = chosen == "true"
	}
	return p, nil
}

func (r *PreferenceRepo) Set(ctx context.Context, visitorID string, currency model.CurrencyCode, explicit bool) error {
	if err := r.client.Set(ctx, r.currencyKey(visitorID), string(currency), r.ttl); err != nil {
		return err
	}
	if explicit {
		return r.client.Set(ctx, r.chosenKey(visitorID), "true", r.ttl)
	}
	return nil
}
