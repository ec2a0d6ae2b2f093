package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expensehub/expensehub-backend-go/internal/domain/request"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, req request.ExpenseRequest) (request.ExpenseRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expense_requests (
			id, owner, subject, category, status, amount, is_finalized, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5::numeric, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.Owner, req.Subject, req.Category, req.Status, req.Amount, req.IsFinalized,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return request.ExpenseRequest{}, request.ErrOwnerNotFound
		}
		return request.ExpenseRequest{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.ExpenseRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner, subject, category, status, amount::text, is_finalized, created_at
		FROM expense_requests
		WHERE id = $1
	`

	var req request.ExpenseRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Owner,
		&req.Subject,
		&req.Category,
		&req.Status,
		&req.Amount,
		&req.IsFinalized,
		&req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.ExpenseRequest{}, request.ErrRequestNotFound
		}
		return request.ExpenseRequest{}, err
	}

	return req, nil
}

func (r *requestRepositoryImpl) List(ctx context.Context) ([]request.ExpenseRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner, subject, category, status, amount::text, is_finalized, created_at
		FROM expense_requests
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.ExpenseRequest
	for rows.Next() {
		var req request.ExpenseRequest
		err := rows.Scan(
			&req.ID,
			&req.Owner,
			&req.Subject,
			&req.Category,
			&req.Status,
			&req.Amount,
			&req.IsFinalized,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// Update applies a partial update: only the supplied fields appear in the
// SET clause, so untouched columns keep their values in a single atomic
// row update.
func (r *requestRepositoryImpl) Update(ctx context.Context, id string, patch request.UpdateRequestRequest) (request.ExpenseRequest, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	if patch.Subject != nil {
		setClauses = append(setClauses, fmt.Sprintf("subject = $%d", argIndex))
		args = append(args, *patch.Subject)
		argIndex++
	}
	if patch.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *patch.Category)
		argIndex++
	}
	if patch.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *patch.Status)
		argIndex++
	}
	if patch.Amount != nil {
		setClauses = append(setClauses, fmt.Sprintf("amount = $%d::numeric", argIndex))
		args = append(args, *patch.Amount)
		argIndex++
	}
	if patch.IsFinalized != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_finalized = $%d", argIndex))
		args = append(args, *patch.IsFinalized)
		argIndex++
	}

	// Empty patch: nothing to write, return the row as-is
	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE expense_requests
		SET %s
		WHERE id = $%d
		RETURNING id, owner, subject, category, status, amount::text, is_finalized, created_at
	`, strings.Join(setClauses, ", "), argIndex)
	args = append(args, id)

	var req request.ExpenseRequest
	err := q.QueryRow(ctx, query, args...).Scan(
		&req.ID,
		&req.Owner,
		&req.Subject,
		&req.Category,
		&req.Status,
		&req.Amount,
		&req.IsFinalized,
		&req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.ExpenseRequest{}, request.ErrRequestNotFound
		}
		return request.ExpenseRequest{}, err
	}

	return req, nil
}
