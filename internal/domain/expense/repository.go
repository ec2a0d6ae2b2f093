package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, exp Expense) (Expense, error)

	// ListByEmployee returns the employee's expenses, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Expense, error)
}
