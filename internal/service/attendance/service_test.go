package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/domain/employee"
	"github.com/staffloop/hr-portal-go/internal/pkg/validator"
)

// ===== in-memory fakes =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.EmployeeID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.EmployeeID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	e, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Status == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.EmployeeID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	for key, e := range r.employees {
		if e.ID == id {
			e.Status = employee.StatusInactive
			r.employees[key] = e
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			// Same shape the unique constraint produces.
			return attendance.Attendance{}, &pgconn.PgError{Code: "23505", ConstraintName: "attendances_employee_date_key"}
		}
	}
	r.nextID++
	a.ID = strconv.Itoa(r.nextID)
	a.CreatedAt = time.Now()
	r.records = append(r.records, a)
	return a, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut string, workingHours *float64) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records[i].CheckOut = &checkOut
			r.records[i].WorkingHours = workingHours
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != "" && rec.Date.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.Date.Year() == year && rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:         "row-1",
		EmployeeID: "EMP001",
		FullName:   "Jane Dev",
		Department: "Engineering",
		Status:     employee.StatusActive,
	}
}

// ===== tests =====

func TestMark_ComputesWorkingHours(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	checkOut := "17:30"
	result, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		CheckOut:   &checkOut,
		Status:     "present",
	})
	require.NoError(t, err)
	require.NotNil(t, result.WorkingHours)
	assert.Equal(t, 8.5, *result.WorkingHours)
	assert.Equal(t, "Jane Dev", result.EmployeeName)
}

func TestMark_NoCheckOutLeavesHoursUnset(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	result, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	})
	require.NoError(t, err)
	assert.Nil(t, result.WorkingHours, "working hours stay undefined, not zero")
}

func TestMark_DuplicateDateConflicts(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	req := attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	}

	_, err := svc.Mark(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestMark_SameEmployeeDifferentDates(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	for _, date := range []string{"2024-03-01", "2024-03-02"} {
		_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
			EmployeeID: "EMP001",
			Date:       date,
			CheckIn:    "09:00",
			Status:     "present",
		})
		require.NoError(t, err)
	}
}

func TestMark_UnknownEmployee(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo())

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "GHOST",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMark_InvalidRequest(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "not-a-date",
		CheckIn:    "09:00",
		Status:     "present",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCheckout_DerivesHoursFromStoredCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo, newFakeEmployeeRepo(testEmployee()))

	marked, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	})
	require.NoError(t, err)
	require.Nil(t, marked.WorkingHours)

	result, err := svc.Checkout(context.Background(), marked.ID, attendance.CheckoutRequest{CheckOut: "17:30"})
	require.NoError(t, err)
	require.NotNil(t, result.CheckOut)
	assert.Equal(t, "17:30", *result.CheckOut)
	require.NotNil(t, result.WorkingHours)
	assert.Equal(t, 8.5, *result.WorkingHours)

	// The update is persisted, not just echoed.
	stored, err := repo.GetByID(context.Background(), marked.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.WorkingHours)
	assert.Equal(t, 8.5, *stored.WorkingHours)
}

func TestCheckout_OverwritesEarlierCheckout(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	checkOut := "16:00"
	marked, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		CheckOut:   &checkOut,
		Status:     "present",
	})
	require.NoError(t, err)

	result, err := svc.Checkout(context.Background(), marked.ID, attendance.CheckoutRequest{CheckOut: "18:00"})
	require.NoError(t, err)
	require.NotNil(t, result.WorkingHours)
	assert.Equal(t, 9.0, *result.WorkingHours)
}

func TestCheckout_UnknownRecord(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	_, err := svc.Checkout(context.Background(), "missing", attendance.CheckoutRequest{CheckOut: "17:30"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestCheckout_InvalidTimes(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo(testEmployee()))

	marked, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	})
	require.NoError(t, err)

	for _, checkOut := range []string{"5pm", "", "08:00", "09:00"} {
		_, err := svc.Checkout(context.Background(), marked.ID, attendance.CheckoutRequest{CheckOut: checkOut})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "check_out %q must be rejected", checkOut)
		assert.Contains(t, verrs.ToMap(), "check_out")
	}
}

func TestList_DateFilter(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo, newFakeEmployeeRepo(testEmployee()))

	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-02"} {
		_, _ = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
			EmployeeID: "EMP001",
			Date:       date,
			CheckIn:    "09:00",
			Status:     "present",
		})
	}

	all, err := svc.List(context.Background(), attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "duplicate date insert was rejected, two records remain")

	filtered, err := svc.List(context.Background(), attendance.ListFilter{Date: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2024-03-02", filtered[0].Date)
}

func TestList_InvalidDateFilter(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newFakeEmployeeRepo())

	_, err := svc.List(context.Background(), attendance.ListFilter{Date: "03/02/2024"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
