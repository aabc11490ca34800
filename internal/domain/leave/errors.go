package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveCreditNotFound  = errors.New("leave credit not found")
	ErrAlreadyDecided       = errors.New("leave request has already been decided")
	ErrInvalidDateRange     = errors.New("leave dates must be valid and end on or after the start date")
)
