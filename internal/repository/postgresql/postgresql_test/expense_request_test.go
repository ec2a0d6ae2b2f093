package postgresql_test

import (
	"context"
	"testing"

	"github.com/expensehub/expensehub-backend-go/internal/domain/request"
	"github.com/expensehub/expensehub-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRequestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	owner := createTestUser(t, ctx, db, "manager1", "manager1@example.com")
	repo := postgresql.NewRequestRepository(db)

	created, err := repo.Create(ctx, request.ExpenseRequest{
		Owner:       owner,
		Subject:     "Conference travel",
		Category:    "Travel",
		Status:      request.RequestStatusPending,
		Amount:      "350.00",
		IsFinalized: false,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Conference travel", got.Subject)
	assert.Equal(t, request.RequestStatusPending, got.Status)
	assert.Equal(t, "350.00", got.Amount)
	assert.False(t, got.IsFinalized)
}

func TestRequestRepository_Create_UnknownOwner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewRequestRepository(db)

	_, err := repo.Create(ctx, request.ExpenseRequest{
		Owner:    "does-not-exist",
		Subject:  "s",
		Category: "c",
		Status:   request.RequestStatusPending,
		Amount:   "1.00",
	})
	assert.ErrorIs(t, err, request.ErrOwnerNotFound)
}

func TestRequestRepository_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	owner := createTestUser(t, ctx, db, "manager2", "manager2@example.com")

	// Explicit timestamps so the ordering assertion is deterministic
	subjects := []string{"first", "second", "third"}
	for i, subject := range subjects {
		_, err := db.Exec(ctx, `
			INSERT INTO expense_requests (owner, subject, category, status, amount, is_finalized, created_at)
			VALUES ($1, $2, 'Travel', 'Pending', 10.00, false, NOW() - make_interval(days => $3))
		`, owner, subject, len(subjects)-i)
		require.NoError(t, err)
	}

	repo := postgresql.NewRequestRepository(db)
	requests, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "third", requests[0].Subject)
	assert.Equal(t, "second", requests[1].Subject)
	assert.Equal(t, "first", requests[2].Subject)
}

func TestRequestRepository_Update_Partial(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	owner := createTestUser(t, ctx, db, "manager3", "manager3@example.com")
	repo := postgresql.NewRequestRepository(db)

	created, err := repo.Create(ctx, request.ExpenseRequest{
		Owner:    owner,
		Subject:  "Team lunch",
		Category: "Meals",
		Status:   request.RequestStatusPending,
		Amount:   "80.00",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, request.UpdateRequestRequest{
		Status: strPtr("Approved"),
	})
	require.NoError(t, err)

	// Only status changed
	assert.Equal(t, request.RequestStatusApproved, updated.Status)
	assert.Equal(t, "Team lunch", updated.Subject)
	assert.Equal(t, "Meals", updated.Category)
	assert.Equal(t, "80.00", updated.Amount)
	assert.False(t, updated.IsFinalized)
	assert.Equal(t, created.CreatedAt.UTC(), updated.CreatedAt.UTC())
}

func TestRequestRepository_Update_EmptyPatch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	owner := createTestUser(t, ctx, db, "manager4", "manager4@example.com")
	repo := postgresql.NewRequestRepository(db)

	created, err := repo.Create(ctx, request.ExpenseRequest{
		Owner:    owner,
		Subject:  "Monitor",
		Category: "Equipment",
		Status:   request.RequestStatusPending,
		Amount:   "220.00",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, request.UpdateRequestRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Monitor", updated.Subject)
}

func TestRequestRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	repo := postgresql.NewRequestRepository(db)

	_, err := repo.Update(ctx, "missing-id", request.UpdateRequestRequest{
		Status: strPtr("Approved"),
	})
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestRequestRepository_OwnerDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	truncateAllTables(t, ctx, db)

	owner := createTestUser(t, ctx, db, "manager5", "manager5@example.com")
	repo := postgresql.NewRequestRepository(db)

	created, err := repo.Create(ctx, request.ExpenseRequest{
		Owner:    owner,
		Subject:  "Keyboard",
		Category: "Equipment",
		Status:   request.RequestStatusPending,
		Amount:   "45.00",
	})
	require.NoError(t, err)

	_, err = db.Exec(ctx, "DELETE FROM users WHERE id = $1", owner)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}
