package expense

import (
	"context"
	"fmt"

	"github.com/expensehub/expensehub-backend-go/internal/domain/expense"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/database"
	"github.com/expensehub/expensehub-backend-go/internal/service/file"
)

type expenseServiceImpl struct {
	db          *database.DB
	expenseRepo expense.ExpenseRepository
	fileService file.FileService
}

func NewExpenseService(db *database.DB, expenseRepo expense.ExpenseRepository, fileService file.FileService) expense.ExpenseService {
	return &expenseServiceImpl{
		db:          db,
		expenseRepo: expenseRepo,
		fileService: fileService,
	}
}

// Create implements expense.ExpenseService. EmployeeID comes from the
// authenticated identity and status is always pending; neither is
// client-settable.
func (s *expenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error) {
	var receipt *string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadReceipt(ctx, req.EmployeeID, req.File, req.FileHeader.Filename)
		if err != nil {
			return expense.Expense{}, fmt.Errorf("failed to store receipt: %w", err)
		}
		receipt = &path
	}

	newExpense := expense.Expense{
		EmployeeID:  req.EmployeeID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Status:      expense.ExpenseStatusPending,
		Receipt:     receipt,
	}

	created, err := s.expenseRepo.Create(ctx, newExpense)
	if err != nil {
		// Drop the uploaded receipt when the insert fails
		if receipt != nil {
			_ = s.fileService.DeleteFile(ctx, *receipt)
		}
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

// ListMine implements expense.ExpenseService.
func (s *expenseServiceImpl) ListMine(ctx context.Context, employeeID string) ([]expense.Expense, error) {
	expenses, err := s.expenseRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}
