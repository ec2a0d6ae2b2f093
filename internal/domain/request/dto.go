package request

import (
	"time"

	"github.com/expensehub/expensehub-backend-go/internal/pkg/validator"
)

// CreateRequestRequest carries client-supplied fields, including status and
// is_finalized. Unlike expense submission, these are not server-overridden.
type CreateRequestRequest struct {
	Owner       string  `json:"owner"`
	Subject     string  `json:"subject"`
	Category    string  `json:"category"`
	Status      *string `json:"status,omitempty"`
	Amount      string  `json:"amount"`
	IsFinalized *bool   `json:"is_finalized,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Owner
	if validator.IsEmpty(r.Owner) {
		errs = append(errs, validator.ValidationError{
			Field:   "owner",
			Message: "owner is required",
		})
	}

	// Subject
	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}
	if len(r.Subject) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject must not exceed 255 characters",
		})
	}

	// Category
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if len(r.Category) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must not exceed 100 characters",
		})
	}

	// Status
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequestRequest is a partial update: only supplied fields change.
// There is no field allow-list separating manager-only from employee-only
// fields.
type UpdateRequestRequest struct {
	Subject     *string `json:"subject,omitempty"`
	Category    *string `json:"category,omitempty"`
	Status      *string `json:"status,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	IsFinalized *bool   `json:"is_finalized,omitempty"`
}

func (r *UpdateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Subject != nil {
		if validator.IsEmpty(*r.Subject) {
			errs = append(errs, validator.ValidationError{
				Field:   "subject",
				Message: "subject must not be empty",
			})
		}
		if len(*r.Subject) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "subject",
				Message: "subject must not exceed 255 characters",
			})
		}
	}

	if r.Category != nil {
		if validator.IsEmpty(*r.Category) {
			errs = append(errs, validator.ValidationError{
				Field:   "category",
				Message: "category must not be empty",
			})
		}
		if len(*r.Category) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "category",
				Message: "category must not exceed 100 characters",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

	if r.Amount != nil && !validator.IsValidAmount(*r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a decimal with at most 2 fraction digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Subject     string    `json:"subject"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	IsFinalized bool      `json:"is_finalized"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRequestResponse(e ExpenseRequest) RequestResponse {
	return RequestResponse{
		ID:          e.ID,
		Owner:       e.Owner,
		Subject:     e.Subject,
		Category:    e.Category,
		Status:      string(e.Status),
		Amount:      e.Amount,
		IsFinalized: e.IsFinalized,
		CreatedAt:   e.CreatedAt,
	}
}

func NewRequestResponses(es []ExpenseRequest) []RequestResponse {
	result := make([]RequestResponse, 0, len(es))
	for _, e := range es {
		result = append(result, NewRequestResponse(e))
	}
	return result
}
