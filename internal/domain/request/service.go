package request

import "context"

type RequestService interface {
	List(ctx context.Context) ([]ExpenseRequest, error)
	Create(ctx context.Context, req CreateRequestRequest) (ExpenseRequest, error)
	Update(ctx context.Context, id string, patch UpdateRequestRequest) (ExpenseRequest, error)
}
