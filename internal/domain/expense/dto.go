package expense

import (
	"mime/multipart"
	"time"

	"github.com/expensehub/expensehub-backend-go/internal/pkg/validator"
)

// CreateExpenseRequest is built from a multipart form. EmployeeID is set by
// the handler from the authenticated identity; any client-supplied value is
// discarded. Status is never client-settable.
type CreateExpenseRequest struct {
	EmployeeID  string
	Amount      string
	Category    string
	Description string

	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	// Amount
	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required",
		})
	} else if !validator.IsValidAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a decimal with at most 2 fraction digits",
		})
	}

	// Category
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of travel, meals, equipment, software, office, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Receipt     *string   `json:"receipt"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Status:      string(e.Status),
		Receipt:     e.Receipt,
		CreatedAt:   e.CreatedAt,
	}
}

func NewExpenseResponses(es []Expense) []ExpenseResponse {
	result := make([]ExpenseResponse, 0, len(es))
	for _, e := range es {
		result = append(result, NewExpenseResponse(e))
	}
	return result
}
