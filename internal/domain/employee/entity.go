package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type Employee struct {
	ID            string
	EmployeeID    string // stable business key, distinct from the row id
	FullName      string
	Email         string
	Phone         string
	Department    string
	Designation   string
	DateOfJoining time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
