package repository

import (
	"testing"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
	"github.com/akshayrj/portfolio-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB := db.SetupTestDB(t)
	return testDB, NewUserRepository(testDB)
}

func TestUserRepository_Create(t *testing.T) {
	_, repo := setupUserTest(t)

	user := &model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "hash",
	}

	err := repo.Create(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	_, repo := setupUserTest(t)

	first := &model.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(first))

	second := &model.User{Username: "other", Email: "admin@example.com", PasswordHash: "hash"}
	err := repo.Create(second)
	assert.Error(t, err)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	_, repo := setupUserTest(t)

	user := &model.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "admin", found.Username)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	_, repo := setupUserTest(t)

	_, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_FindAdmin(t *testing.T) {
	_, repo := setupUserTest(t)

	first := &model.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(first))

	second := &model.User{Username: "later", Email: "later@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(second))

	// The earliest row is the canonical admin account.
	admin, err := repo.FindAdmin()
	require.NoError(t, err)
	assert.Equal(t, first.ID, admin.ID)
}

func TestUserRepository_FindAdmin_Empty(t *testing.T) {
	_, repo := setupUserTest(t)

	_, err := repo.FindAdmin()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	_, repo := setupUserTest(t)

	user := &model.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))

	user.PasswordHash = "newhash"
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", found.PasswordHash)
}

func TestUserRepository_Count(t *testing.T) {
	_, repo := setupUserTest(t)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(&model.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
