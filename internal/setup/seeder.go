package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
)

const (
	// SeedDays is the trailing window of days, today included, that gets attendance.
	SeedDays = 5
	// absentRate is the share of sample attendance marked Absent.
	absentRate = 0.2
)

// RandSource yields values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// SeedResult counts the sample rows inserted.
type SeedResult struct {
	Employees  int
	Attendance int
}

// SampleEmployees returns the fixed set of demo employees.
func SampleEmployees() []models.Employee {
	return []models.Employee{
		{EmployeeID: "EMP001", FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"},
		{EmployeeID: "EMP002", FullName: "Jane Smith", Email: "jane.smith@company.com", Department: "HR"},
		{EmployeeID: "EMP003", FullName: "Mike Johnson", Email: "mike.johnson@company.com", Department: "Marketing"},
	}
}

type Seeder struct {
	log        *slog.Logger
	employees  repository.EmployeeRepoIface
	attendance repository.AttendanceRepoIface
	metrics    *metrics.Metrics
	rnd        RandSource
	now        func() time.Time
}

func NewSeeder(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	attendance repository.AttendanceRepoIface,
	metrics *metrics.Metrics,
	rnd RandSource,
	now func() time.Time,
) *Seeder {
	if now == nil {
		now = time.Now
	}

	return &Seeder{
		log:        log.With(slog.String("division", "seed")),
		employees:  employees,
		attendance: attendance,
		metrics:    metrics,
		rnd:        rnd,
		now:        now,
	}
}

// Seed inserts the sample employees and one attendance row per employee for each of
// the last SeedDays days.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	const opn = "Seeder.Seed"
	log := s.log.With(slog.String("op", opn))

	var result SeedResult

	employees := SampleEmployees()
	ids, err := s.employees.SaveEmployees(ctx, employees)
	if err != nil {
		return result, fmt.Errorf("%w: employees: %w", ErrSeed, err)
	}
	result.Employees = len(ids)
	s.metrics.ItemsSeeded.WithLabelValues("employee").Add(float64(len(ids)))
	log.InfoContext(ctx, "Inserted sample employees", "count", len(ids))

	records := s.attendanceFor(ids)
	saved, err := s.attendance.SaveAttendance(ctx, records)
	if err != nil {
		return result, fmt.Errorf("%w: attendance: %w", ErrSeed, err)
	}
	result.Attendance = saved
	s.metrics.ItemsSeeded.WithLabelValues("attendance").Add(float64(saved))
	log.InfoContext(ctx, "Inserted sample attendance records", "count", saved)

	return result, nil
}

func (s *Seeder) attendanceFor(ids []primitive.ObjectID) []models.Attendance {
	today := models.Day(s.now())
	records := make([]models.Attendance, 0, SeedDays*len(ids))

	for day := range SeedDays {
		date := today.AddDate(0, 0, -day)
		for _, id := range ids {
			status := models.StatusAbsent
			if s.rnd.Float64() > absentRate {
				status = models.StatusPresent
			}
			records = append(records, models.Attendance{Employee: id, Date: date, Status: status})
		}
	}

	return records
}
