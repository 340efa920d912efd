package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEquals and ExpireIfEquals act only while key still holds value, in one round trip.
	DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error)
	ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
