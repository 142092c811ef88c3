package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
)

// DefaultQueryTimeout bounds every directory read.
const DefaultQueryTimeout = 10 * time.Second

// ErrNotFound is returned when no employee carries the requested employee_id.
var ErrNotFound = errors.New("employee not found")

// Directory serves read access to employee records and their attendance.
type Directory struct {
	log        *slog.Logger
	repo       repository.EmployeeRepoIface
	attendance repository.AttendanceRepoIface
	timeout    time.Duration
}

func NewDirectory(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	attendance repository.AttendanceRepoIface,
) *Directory {
	return &Directory{log: log, repo: repo, attendance: attendance, timeout: DefaultQueryTimeout}
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// List returns every employee ordered by employee_id.
func (d *Directory) List(pctx context.Context) ([]models.Employee, error) {
	const opn = "Directory.List"
	log := d.initLogger(opn)

	ctx, cancel := context.WithTimeout(pctx, d.timeout)
	defer cancel()

	employees, err := d.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.DebugContext(ctx, "employees listed", "count", len(employees))
	return employees, nil
}

// Get looks up a single employee by its business identifier.
func (d *Directory) Get(pctx context.Context, employeeID string) (models.Employee, error) {
	const opn = "Directory.Get"
	log := d.initLogger(opn)

	ctx, cancel := context.WithTimeout(pctx, d.timeout)
	defer cancel()

	employee, err := d.repo.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.DebugContext(ctx, "employee is not found", "employee_id", employeeID)
			return models.Employee{}, fmt.Errorf("%w: %q", ErrNotFound, employeeID)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee %q: %w", employeeID, err)
	}

	return employee, nil
}

// Attendance returns the attendance history of one employee, newest day first.
func (d *Directory) Attendance(pctx context.Context, employeeID string) ([]models.Attendance, error) {
	const opn = "Directory.Attendance"
	log := d.initLogger(opn)

	employee, err := d.Get(pctx, employeeID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(pctx, d.timeout)
	defer cancel()

	records, err := d.attendance.ListAttendanceByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %q: %w", employeeID, err)
	}

	log.DebugContext(ctx, "attendance listed", "employee_id", employeeID, "count", len(records))
	return records, nil
}
