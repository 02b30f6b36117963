package approval

import "errors"

var (
	// ErrRequestNotFound is returned when an activation request does not exist
	ErrRequestNotFound = errors.New("activation request not found")

	// ErrRequestAlreadyFinalized is returned when approving or rejecting a
	// request that is already in a terminal state
	ErrRequestAlreadyFinalized = errors.New("activation request already finalized")

	// ErrRejectionReasonRequired is returned when rejecting without a reason
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)
