package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/internal/config"
)

const keyPrefix = "brand-insights"

// RedisStore guarda as visões derivadas e o contador de versão dos dados brutos
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(ctx context.Context, cfg config.Redis) (*RedisStore, error) {
	rs := &RedisStore{
		Client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}

	if err := rs.Client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar ao Redis: %w", err)
	}

	logrus.WithField("addr", cfg.Addr).Info("Conectado ao Redis")
	return rs, nil
}

// Get retorna o valor da chave e false quando ela não existe
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.Client.Get(ctx, prefixed(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, prefixed(key), value, ttl).Err()
}

// Version retorna a versão atual dos dados brutos do membro. Membros sem sync começam em 0.
func (r *RedisStore) Version(ctx context.Context, dashMemberID string) (int64, error) {
	val, err := r.Client.Get(ctx, versionKey(dashMemberID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

// BumpVersion incrementa a versão, o que invalida todas as visões já calculadas do membro
func (r *RedisStore) BumpVersion(ctx context.Context, dashMemberID string) (int64, error) {
	return r.Client.Incr(ctx, versionKey(dashMemberID)).Result()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.Client.Close()
}

func versionKey(dashMemberID string) string {
	return fmt.Sprintf("%s:rawversion:%s", keyPrefix, dashMemberID)
}

func prefixed(key string) string {
	return keyPrefix + ":" + key
}
