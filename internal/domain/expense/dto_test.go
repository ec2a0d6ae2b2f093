package expense

import (
	"testing"

	"github.com/expensehub/expensehub-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpenseRequest_Validate_Success(t *testing.T) {
	req := CreateExpenseRequest{
		EmployeeID: "alice",
		Amount:     "12.50",
		Category:   "travel",
	}

	assert.NoError(t, req.Validate())
}

func TestCreateExpenseRequest_Validate_MissingFields(t *testing.T) {
	req := CreateExpenseRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "amount")
	assert.Contains(t, m, "category")
}

func TestCreateExpenseRequest_Validate_BadAmount(t *testing.T) {
	req := CreateExpenseRequest{
		Amount:   "12.505",
		Category: "meals",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "amount")
}

func TestCreateExpenseRequest_Validate_BadCategory(t *testing.T) {
	req := CreateExpenseRequest{
		Amount:   "5.00",
		Category: "housing",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "category")
}

func TestCreateExpenseRequest_Validate_AllCategories(t *testing.T) {
	for _, category := range Categories {
		req := CreateExpenseRequest{
			Amount:   "1.00",
			Category: category,
		}
		assert.NoError(t, req.Validate(), category)
	}
}

func TestNewExpenseResponse(t *testing.T) {
	receipt := "receipts/alice/abc.png"
	e := Expense{
		ID:          "id-1",
		EmployeeID:  "alice",
		Amount:      "12.50",
		Category:    "travel",
		Description: "taxi",
		Status:      ExpenseStatusPending,
		Receipt:     &receipt,
	}

	resp := NewExpenseResponse(e)
	assert.Equal(t, "alice", resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.Receipt)
	assert.Equal(t, receipt, *resp.Receipt)
}
