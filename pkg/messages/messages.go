package messages

import "errors"

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	RequestFailedMsg    = "API request failed on URL %s"
	OperationInProgress = "operation already in progress, please wait"
)

// Error taxonomy surfaced to the callers of the API.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
)
