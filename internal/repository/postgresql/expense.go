package postgresql

import (
	"context"

	"github.com/expensehub/expensehub-backend-go/internal/domain/expense"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

func (r *expenseRepositoryImpl) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			id, employee_id, amount, category, description, status, receipt, created_at
		) VALUES (
			uuidv7(), $1, $2::numeric, $3, $4, $5, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		exp.EmployeeID, exp.Amount, exp.Category, exp.Description, exp.Status, exp.Receipt,
	).Scan(&exp.ID, &exp.CreatedAt)

	if err != nil {
		return expense.Expense{}, err
	}

	return exp, nil
}

func (r *expenseRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount::text, category, description, status, receipt, created_at
		FROM expenses
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var exp expense.Expense
		err := rows.Scan(
			&exp.ID,
			&exp.EmployeeID,
			&exp.Amount,
			&exp.Category,
			&exp.Description,
			&exp.Status,
			&exp.Receipt,
			&exp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}
