package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (Expense, error)
	ListMine(ctx context.Context, employeeID string) ([]Expense, error)
}
