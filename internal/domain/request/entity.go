package request

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// Statuses lists every valid ExpenseRequest status.
var Statuses = []string{
	string(RequestStatusPending),
	string(RequestStatusApproved),
	string(RequestStatusRejected),
}

// ExpenseRequest entity. Owner is a strong reference to a user; deleting
// the user cascades to its requests. Status transitions are unconstrained:
// a partial update may move a request between any two statuses.
type ExpenseRequest struct {
	ID          string
	Owner       string
	Subject     string
	Category    string
	Status      RequestStatus
	Amount      string
	IsFinalized bool
	CreatedAt   time.Time
}
