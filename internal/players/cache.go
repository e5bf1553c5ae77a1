package players

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/Aidin1998/rosterhub/pkg/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix   = "rosterhub:player:"
	versionKeyPrefix = "rosterhub:player-version:"
	versionTTL       = time.Hour
)

var errStaleFill = stderrors.New("player changed while loading")

// CachedStore serves FindFirst from Redis and falls back to the wrapped store.
// Writes go to the store first, then bump the player's version and evict the
// cached entry. A fill only lands if the version it read before loading from
// the store is still current, so a read racing a write never caches the old
// row. Redis errors are logged and never fail a request.
type CachedStore struct {
	Store
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ Store = (*CachedStore)(nil)

// NewCachedStore wraps store with a read-through cache
func NewCachedStore(store Store, client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{Store: store, client: client, ttl: ttl, logger: logger}
}

func cacheKey(id string) string {
	return cacheKeyPrefix + id
}

func versionKey(id string) string {
	return versionKeyPrefix + id
}

func (s *CachedStore) FindFirst(ctx context.Context, id string) (*models.Player, error) {
	raw, err := s.client.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var player models.Player
		if jerr := json.Unmarshal(raw, &player); jerr == nil {
			return &player, nil
		}
		s.logger.Warn("Discarding corrupt cached player", zap.String("player_id", id))
	case !stderrors.Is(err, redis.Nil):
		s.logger.Warn("Player cache read failed", zap.String("player_id", id), zap.Error(err))
	}

	version, verr := s.version(ctx, id)

	player, err := s.Store.FindFirst(ctx, id)
	if err != nil {
		return nil, err
	}
	if verr == nil {
		s.put(ctx, player, version)
	}
	return player, nil
}

func (s *CachedStore) Update(ctx context.Context, id string, patch models.PlayerPatch) (*models.Player, error) {
	player, err := s.Store.Update(ctx, id, patch)
	s.evict(ctx, id)
	return player, err
}

func (s *CachedStore) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	s.evict(ctx, id)
	return err
}

// version returns the player's write counter; "" when it has never been written
func (s *CachedStore) version(ctx context.Context, id string) (string, error) {
	v, err := s.client.Get(ctx, versionKey(id)).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

// put caches player unless its version moved past seen
func (s *CachedStore) put(ctx context.Context, player *models.Player, seen string) {
	payload, err := json.Marshal(player)
	if err != nil {
		return
	}

	vkey := versionKey(player.ID)
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Result()
		if err != nil && !stderrors.Is(err, redis.Nil) {
			return err
		}
		if current != seen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(player.ID), payload, s.ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
	case stderrors.Is(err, errStaleFill), stderrors.Is(err, redis.TxFailedErr):
		s.logger.Debug("Skipped stale player cache fill", zap.String("player_id", player.ID))
	default:
		s.logger.Warn("Player cache write failed", zap.String("player_id", player.ID), zap.Error(err))
	}
}

func (s *CachedStore) evict(ctx context.Context, id string) {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(id))
		pipe.Expire(ctx, versionKey(id), versionTTL)
		pipe.Del(ctx, cacheKey(id))
		return nil
	})
	if err != nil {
		s.logger.Warn("Player cache eviction failed", zap.String("player_id", id), zap.Error(err))
	}
}
