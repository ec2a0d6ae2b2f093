package request

import "context"

type RequestRepository interface {
	Create(ctx context.Context, req ExpenseRequest) (ExpenseRequest, error)
	GetByID(ctx context.Context, id string) (ExpenseRequest, error)
	List(ctx context.Context) ([]ExpenseRequest, error)
	Update(ctx context.Context, id string, patch UpdateRequestRequest) (ExpenseRequest, error)
}
