package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyReviewed      = errors.New("leave request already approved or rejected")
	ErrReviewNotAllowed     = errors.New("only hr or admin can review leave requests")
)
