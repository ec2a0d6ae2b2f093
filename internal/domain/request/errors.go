package request

import "errors"

var (
	ErrRequestNotFound = errors.New("expense request not found")
	ErrOwnerNotFound   = errors.New("owner does not exist")
)
