package repository

import (
	"path/filepath"
	"testing"

	"smartstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSQLiteRepo(t *testing.T) *SQLiteUserRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.db")
	repo, err := NewSQLiteUserRepository(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteUserRepository_SeedsDefaultUsers(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	admin, err := repo.FindByEmail("admin@store.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", admin.Name)

	exists, err := repo.ExistsByEmail("user@store.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteUserRepository_SaveUpsertsByEmail(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	require.NoError(t, repo.Save(domain.NewUser("new@store.com", "pw1", "First")))
	require.NoError(t, repo.Save(domain.NewUser("new@store.com", "pw2", "Second")))

	found, err := repo.FindByEmail("new@store.com")
	require.NoError(t, err)
	assert.Equal(t, "pw2", found.Password)
	assert.Equal(t, "Second", found.Name)
}

func TestSQLiteUserRepository_DeleteMissingUserFails(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	err := repo.Delete("ghost@store.com")

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestSQLiteUserRepository_FindAll(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	require.NoError(t, repo.Save(domain.NewUser("extra@store.com", "pw", "Extra")))

	all, err := repo.FindAll()
	require.NoError(t, err)

	assert.Len(t, all, 3)
	assert.Contains(t, all, "extra@store.com")
}
