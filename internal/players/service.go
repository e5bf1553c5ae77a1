// Package players holds the player domain: persistence, request validation,
// the optional Redis cache and Kafka events, and the service that sequences them.
package players

import (
	"context"
	"io"
	"time"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/Aidin1998/rosterhub/pkg/metrics"
	"github.com/Aidin1998/rosterhub/pkg/models"
	"go.uber.org/zap"
)

// ErrPlayerNotFound is returned when the requested id does not exist
var ErrPlayerNotFound = errors.NotFound.Explain("Player not found")

const publishTimeout = 5 * time.Second

// Service implements the player operations exposed over HTTP. The existence
// check and the mutation are separate store calls with no transaction around
// them; a record removed in between surfaces as ErrPlayerNotFound.
type Service struct {
	store  Store
	events EventPublisher
	logger *zap.Logger
}

// NewService creates a player service. A nil publisher disables events.
func NewService(store Store, events EventPublisher, logger *zap.Logger) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{store: store, events: events, logger: logger}
}

// ListPlayers returns every player ordered by name
func (s *Service) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return s.store.FindMany(ctx, ByNameAsc)
}

// GetPlayer returns the player with the given id
func (s *Service) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.store.FindFirst(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return player, nil
}

// CreatePlayer validates body and inserts a new player
func (s *Service) CreatePlayer(ctx context.Context, body io.Reader) (*models.Player, error) {
	raw, err := readBody(body)
	if err != nil {
		return nil, err
	}

	player, err := ParseCreate(raw)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, player); err != nil {
		return nil, err
	}

	metrics.PlayerMutations.WithLabelValues("create").Inc()
	s.logger.Info("Player created", zap.String("player_id", player.ID))
	s.publish(ctx, EventCreated, player.ID, player)
	return player, nil
}

// UpdatePlayer checks that id exists, then reads and validates body as a
// partial update and applies it. An unknown id is reported before any body error.
func (s *Service) UpdatePlayer(ctx context.Context, id string, body io.Reader) (*models.Player, error) {
	if _, err := s.store.FindFirst(ctx, id); err != nil {
		return nil, notFound(err)
	}

	raw, err := readBody(body)
	if err != nil {
		return nil, err
	}

	patch, err := ParseUpdate(raw)
	if err != nil {
		return nil, err
	}

	player, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err)
	}

	metrics.PlayerMutations.WithLabelValues("update").Inc()
	s.logger.Info("Player updated", zap.String("player_id", id))
	s.publish(ctx, EventUpdated, id, player)
	return player, nil
}

// DeletePlayer checks that id exists and removes it
func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	if _, err := s.store.FindFirst(ctx, id); err != nil {
		return notFound(err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return notFound(err)
	}

	metrics.PlayerMutations.WithLabelValues("delete").Inc()
	s.logger.Info("Player removed", zap.String("player_id", id))
	s.publish(ctx, EventDeleted, id, nil)
	return nil
}

func (s *Service) publish(ctx context.Context, typ EventType, id string, player *models.Player) {
	// Detached from request cancellation, bounded by publishTimeout.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := Event{Type: typ, PlayerID: id, Player: player, OccurredAt: time.Now().UTC()}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish player event",
			zap.String("event", string(typ)),
			zap.String("player_id", id),
			zap.Error(err))
	}
}

func readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Internal.Explain("read request body").Wrap(err)
	}
	return raw, nil
}

// notFound replaces a store NotFound with the player-specific message
func notFound(err error) error {
	if errors.KindOf(err) == errors.KindNotFound {
		return ErrPlayerNotFound.Wrap(err)
	}
	return err
}
