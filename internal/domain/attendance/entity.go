package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Attendance is one ledger entry. At most one exists per (employee, date);
// the database enforces that with a unique constraint.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckIn      string  // "HH:MM", 24h
	CheckOut     *string // nil until the employee checks out
	Status       Status
	WorkingHours *float64 // derived; nil while CheckOut is nil
	CreatedAt    time.Time

	// Read-side join against the employee directory
	EmployeeName *string
}

// ComputeWorkingHours derives the fractional-hour span between two "HH:MM"
// times on the same day, rounded to 2 decimal places. Returns nil when
// checkOut is nil. The caller is responsible for having validated the time
// format and ordering beforehand.
func ComputeWorkingHours(checkIn string, checkOut *string) *float64 {
	if checkOut == nil {
		return nil
	}
	in, err := time.Parse("15:04", checkIn)
	if err != nil {
		return nil
	}
	out, err := time.Parse("15:04", *checkOut)
	if err != nil {
		return nil
	}
	hours := out.Sub(in).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}
