package leave

import "time"

type Type string

const (
	TypeCasual   Type = "casual"
	TypeSick     Type = "sick"
	TypeVacation Type = "vacation"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeCasual, TypeSick, TypeVacation:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest moves through exactly one transition: pending to approved or
// pending to rejected. Requests are never deleted.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	DaysCount  int // derived server-side, inclusive of both endpoints
	Reason     string
	Status     RequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	AppliedAt  time.Time

	// Read-side join against the employee directory
	EmployeeName *string
}

// InclusiveDays counts calendar days between start and end counting both
// endpoints. start and end must be midnight-truncated dates.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
