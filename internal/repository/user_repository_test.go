package repository

import (
	"testing"

	"smartstore/internal/data"
	"smartstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_SeedsDefaultUsers(t *testing.T) {
	repo := NewMemoryUserRepository(data.NewDataStore())

	admin, err := repo.FindByEmail("admin@store.com")
	require.NoError(t, err)
	assert.Equal(t, "admin123", admin.Password)

	exists, err := repo.ExistsByEmail("user@store.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryUserRepository_SkipsSeedWhenUsersExist(t *testing.T) {
	ds := data.NewDataStore()
	ds.Put("users", map[string]*domain.User{
		"existing@store.com": domain.NewUser("existing@store.com", "secret", "Existing"),
	})

	repo := NewMemoryUserRepository(ds)

	_, err := repo.FindByEmail("admin@store.com")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryUserRepository_SaveAndDelete(t *testing.T) {
	repo := NewMemoryUserRepository(data.NewDataStore())

	require.NoError(t, repo.Save(domain.NewUser("new@store.com", "pw", "New User")))

	found, err := repo.FindByEmail("new@store.com")
	require.NoError(t, err)
	assert.Equal(t, "New User", found.Name)

	require.NoError(t, repo.Delete("new@store.com"))

	err = repo.Delete("new@store.com")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestMemoryUserRepository_FindAllReturnsCopy(t *testing.T) {
	repo := NewMemoryUserRepository(data.NewDataStore())

	all, err := repo.FindAll()
	require.NoError(t, err)
	delete(all, "admin@store.com")

	_, err = repo.FindByEmail("admin@store.com")
	assert.NoError(t, err)
}
