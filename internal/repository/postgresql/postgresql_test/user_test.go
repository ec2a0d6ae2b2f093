package postgresql_test

import (
	"context"
	"testing"

	"github.com/expensehub/expensehub-backend-go/internal/domain/account"
	"github.com/expensehub/expensehub-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewUserRepository(db)

	created, err := repo.Create(ctx, account.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "alice", byEmail.Username)

	byUsername, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewUserRepository(db)

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewUserRepository(db)

	_, err := repo.Create(ctx, account.User{
		Username: "carol", Email: "carol@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, account.User{
		Username: "carol", Email: "carol2@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, account.ErrUsernameTaken)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewUserRepository(db)

	_, err := repo.Create(ctx, account.User{
		Username: "dave", Email: "dave@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, account.User{
		Username: "dave2", Email: "dave@example.com", PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, account.ErrEmailTaken)
}
