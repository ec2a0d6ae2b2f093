package expense

import "time"

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// Categories lists the accepted expense categories.
var Categories = []string{
	"travel",
	"meals",
	"equipment",
	"software",
	"office",
	"other",
}

// Expense entity. EmployeeID is a free-text, indexed identifier with no
// foreign key into the users table; it comes from the shared-secret token,
// not from a user record.
type Expense struct {
	ID          string
	EmployeeID  string
	Amount      string
	Category    string
	Description string
	Status      ExpenseStatus
	Receipt     *string
	CreatedAt   time.Time
}
