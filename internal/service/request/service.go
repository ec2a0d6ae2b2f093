package request

import (
	"context"
	"fmt"

	"github.com/expensehub/expensehub-backend-go/internal/domain/request"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
)

type requestServiceImpl struct {
	db          *database.DB
	requestRepo request.RequestRepository
}

func NewRequestService(db *database.DB, requestRepo request.RequestRepository) request.RequestService {
	return &requestServiceImpl{
		db:          db,
		requestRepo: requestRepo,
	}
}

// List implements request.RequestService.
func (s *requestServiceImpl) List(ctx context.Context) ([]request.ExpenseRequest, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense requests: %w", err)
	}
	return requests, nil
}

// Create implements request.RequestService. Client-supplied status and
// is_finalized are honored here; only the default is server-side.
func (s *requestServiceImpl) Create(ctx context.Context, req request.CreateRequestRequest) (request.ExpenseRequest, error) {
	status := request.RequestStatusPending
	if req.Status != nil {
		status = request.RequestStatus(*req.Status)
	}

	isFinalized := false
	if req.IsFinalized != nil {
		isFinalized = *req.IsFinalized
	}

	newRequest := request.ExpenseRequest{
		Owner:       req.Owner,
		Subject:     req.Subject,
		Category:    req.Category,
		Status:      status,
		Amount:      req.Amount,
		IsFinalized: isFinalized,
	}

	created, err := s.requestRepo.Create(ctx, newRequest)
	if err != nil {
		if err == request.ErrOwnerNotFound {
			return request.ExpenseRequest{}, err
		}
		return request.ExpenseRequest{}, fmt.Errorf("failed to create expense request: %w", err)
	}

	return created, nil
}

// Update implements request.RequestService.
func (s *requestServiceImpl) Update(ctx context.Context, id string, patch request.UpdateRequestRequest) (request.ExpenseRequest, error) {
	updated, err := s.requestRepo.Update(ctx, id, patch)
	if err != nil {
		if err == request.ErrRequestNotFound {
			return request.ExpenseRequest{}, err
		}
		return request.ExpenseRequest{}, fmt.Errorf("failed to update expense request: %w", err)
	}
	return updated, nil
}
