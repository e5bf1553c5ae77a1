package players

import (
	"context"
	"testing"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/Aidin1998/rosterhub/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStoreCreateAndFind(t *testing.T) {
	store := NewGormStore(newTestDB(t))
	ctx := context.Background()

	player := &models.Player{Name: "Jude Bellingham", Age: 21, MarketValue: 180}
	require.NoError(t, store.Create(ctx, player))
	_, err := uuid.Parse(player.ID)
	require.NoError(t, err)
	assert.False(t, player.CreatedAt.IsZero())

	found, err := store.FindFirst(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, player.Name, found.Name)
	assert.Equal(t, player.Age, found.Age)
	assert.Equal(t, player.MarketValue, found.MarketValue)

	for _, id := range []string{uuid.NewString(), "42", "not-an-id", ""} {
		_, err := store.FindFirst(ctx, id)
		assert.True(t, errors.Is(err, errors.NotFound), "id %q", id)
	}
}

func TestGormStoreFindManyOrdering(t *testing.T) {
	store := NewGormStore(newTestDB(t))
	ctx := context.Background()

	for _, p := range []models.Player{
		{Name: "Vinicius", Age: 24, MarketValue: 200},
		{Name: "Bukayo Saka", Age: 23, MarketValue: 140},
		{Name: "Florian Wirtz", Age: 21, MarketValue: 130},
	} {
		p := p
		require.NoError(t, store.Create(ctx, &p))
	}

	players, err := store.FindMany(ctx, ByNameAsc)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, []string{"Bukayo Saka", "Florian Wirtz", "Vinicius"},
		[]string{players[0].Name, players[1].Name, players[2].Name})

	byValue, err := store.FindMany(ctx, OrderBy{Field: "marketValue", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "Vinicius", byValue[0].Name)

	_, err = store.FindMany(ctx, OrderBy{Field: "name; DROP TABLE players"})
	assert.Equal(t, errors.KindInternal, errors.KindOf(err))
}

func TestGormStoreFindManyEmpty(t *testing.T) {
	store := NewGormStore(newTestDB(t))

	players, err := store.FindMany(context.Background(), ByNameAsc)
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestGormStoreUpdatePartial(t *testing.T) {
	store := NewGormStore(newTestDB(t))
	ctx := context.Background()

	player := &models.Player{Name: "Lamine Yamal", Age: 17, MarketValue: 150}
	require.NoError(t, store.Create(ctx, player))

	age := 18.0
	updated, err := store.Update(ctx, player.ID, models.PlayerPatch{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 18.0, updated.Age)
	assert.Equal(t, "Lamine Yamal", updated.Name)
	assert.Equal(t, 150.0, updated.MarketValue)
	assert.Equal(t, player.ID, updated.ID)

	_, err = store.Update(ctx, uuid.NewString(), models.PlayerPatch{Age: &age})
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestGormStoreDelete(t *testing.T) {
	store := NewGormStore(newTestDB(t))
	ctx := context.Background()

	player := &models.Player{Name: "Rodri", Age: 28, MarketValue: 120}
	require.NoError(t, store.Create(ctx, player))

	require.NoError(t, store.Delete(ctx, player.ID))
	_, err := store.FindFirst(ctx, player.ID)
	assert.True(t, errors.Is(err, errors.NotFound))

	assert.True(t, errors.Is(store.Delete(ctx, player.ID), errors.NotFound))
}
