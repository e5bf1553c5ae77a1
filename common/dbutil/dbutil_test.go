package dbutil

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint
	Name string
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	notFound := WrapError(gorm.ErrRecordNotFound)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(notFound))

	pg := WrapError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "players_pkey"}))
	assert.Equal(t, errors.KindInternal, errors.KindOf(pg))
	assert.Contains(t, pg.Error(), "23505")

	generic := WrapError(stderrors.New("driver: bad connection"))
	assert.Equal(t, errors.KindInternal, errors.KindOf(generic))

	already := errors.Validation.Explain("bad")
	assert.Same(t, already, WrapError(already))
}

func TestFindOne(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	w, err := FindOne[widget](db.Where("name = ?", "a"))
	require.NoError(t, err)
	assert.Equal(t, "a", w.Name)

	_, err = FindOne[widget](db.Where("name = ?", "missing"))
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestRequireAffected(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	assert.NoError(t, RequireAffected(db.Where("name = ?", "a").Delete(&widget{})))
	assert.True(t, errors.Is(RequireAffected(db.Where("name = ?", "a").Delete(&widget{})), errors.NotFound))
}
