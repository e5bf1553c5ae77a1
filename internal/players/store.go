package players

import (
	"context"
	"fmt"

	"github.com/Aidin1998/rosterhub/common/dbutil"
	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/Aidin1998/rosterhub/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderBy selects the sort column (JSON field name) and direction for FindMany
type OrderBy struct {
	Field string
	Desc  bool
}

// ByNameAsc is the listing order
var ByNameAsc = OrderBy{Field: "name"}

var sortableColumns = map[string]string{
	"name":        "name",
	"age":         "age",
	"marketValue": "market_value",
	"createdAt":   "created_at",
}

// Store is the persistence client for players. Absent records are reported
// as errors.NotFound; every other failure is errors.Internal.
type Store interface {
	FindFirst(ctx context.Context, id string) (*models.Player, error)
	FindMany(ctx context.Context, order OrderBy) ([]models.Player, error)
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, id string, patch models.PlayerPatch) (*models.Player, error)
	Delete(ctx context.Context, id string) error
}

// GormStore implements Store on gorm
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a new gorm-backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindFirst(ctx context.Context, id string) (*models.Player, error) {
	return dbutil.FindOne[models.Player](s.db.WithContext(ctx).Where("id = ?", id))
}

func (s *GormStore) FindMany(ctx context.Context, order OrderBy) ([]models.Player, error) {
	column, ok := sortableColumns[order.Field]
	if !ok {
		return nil, errors.Internal.Explain("unsupported sort field %q", order.Field)
	}

	players := make([]models.Player, 0)
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order.Desc}).
		Order("id").
		Find(&players).Error
	if err != nil {
		return nil, dbutil.WrapError(err)
	}
	return players, nil
}

func (s *GormStore) Create(ctx context.Context, player *models.Player) error {
	return dbutil.WrapError(s.db.WithContext(ctx).Create(player).Error)
}

func (s *GormStore) Update(ctx context.Context, id string, patch models.PlayerPatch) (*models.Player, error) {
	if !patch.Empty() {
		result := s.db.WithContext(ctx).
			Model(&models.Player{}).
			Where("id = ?", id).
			Updates(patch.Columns())
		if err := dbutil.RequireAffected(result); err != nil {
			return nil, err
		}
	}

	player, err := s.FindFirst(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload player: %w", err)
	}
	return player, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return dbutil.RequireAffected(s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Player{}))
}
