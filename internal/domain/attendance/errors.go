package attendance

import "errors"

var (
	ErrAlreadyMarked      = errors.New("attendance already marked for this employee and date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
