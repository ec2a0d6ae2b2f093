package http

import (
	"log/slog"
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/domain/expense"
	"github.com/expensehub/expensehub-backend-go/internal/handler/http/response"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/token"
)

const maxReceiptSize = 10 << 20 // 10 MB multipart memory limit

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{
		expenseService: expenseService,
	}
}

// Create implements ExpenseHandler. The form's employee_id, if any, is
// ignored: the identity attached by the auth middleware wins.
func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := token.FromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := expense.CreateExpenseRequest{
		EmployeeID:  identity.EmployeeID,
		Amount:      r.FormValue("amount"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, fileHeader, err := r.FormFile("receipt")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get receipt from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if file != nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	created, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created successfully", expense.NewExpenseResponse(created))
}

// ListMine implements ExpenseHandler.
func (h *ExpenseHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := token.FromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	expenses, err := h.expenseService.ListMine(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expense.NewExpenseResponses(expenses))
}
