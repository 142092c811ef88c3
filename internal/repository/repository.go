package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicate       = errors.New("duplicate key")
	ErrUnknownEmployee = errors.New("attendance references an unknown employee")
	ErrInvalid         = errors.New("invalid document")
)

type Repository struct {
	db       *mongo.Database
	metrics  *metrics.Metrics
	validate *validator.Validate
	now      func() time.Time
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	SaveEmployees(ctx context.Context, employees []models.Employee) ([]primitive.ObjectID, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error)
}

// AttendanceRepoIface represents the interface for interacting with attendance data.
type AttendanceRepoIface interface {
	SaveAttendance(ctx context.Context, records []models.Attendance) (int, error)
	ListAttendanceByEmployee(ctx context.Context, employee primitive.ObjectID) ([]models.Attendance, error)
}

func newRepository(db *mongo.Database, metrics *metrics.Metrics) *Repository {
	return &Repository{db: db, metrics: metrics, validate: validator.New(), now: time.Now}
}

func NewEmployeeRepository(db *mongo.Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return newRepository(db, metrics)
}

func NewAttendanceRepository(db *mongo.Database, metrics *metrics.Metrics) AttendanceRepoIface {
	return newRepository(db, metrics)
}

func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()
	return func() {
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
	}
}

func wrapWriteError(msg string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %w", msg, ErrDuplicate, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
