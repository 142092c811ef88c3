package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/schema"
)

// SaveAttendance inserts attendance records after checking that every referenced
// employee exists. Dates are truncated to the day. A second record for the same
// employee and day fails with ErrDuplicate.
func (r *Repository) SaveAttendance(ctx context.Context, records []models.Attendance) (int, error) {
	defer r.observe("save_attendance")()

	if len(records) == 0 {
		return 0, nil
	}

	now := r.now().UTC()
	docs := make([]any, 0, len(records))
	refs := make(map[primitive.ObjectID]struct{})

	for _, record := range records {
		if err := r.validate.Struct(record); err != nil {
			return 0, fmt.Errorf("%w: attendance: %w", ErrInvalid, err)
		}
		record.Date = models.Day(record.Date)
		record.CreatedAt = now
		record.UpdatedAt = now

		refs[record.Employee] = struct{}{}
		docs = append(docs, record)
	}

	if err := r.ensureEmployeesExist(ctx, refs); err != nil {
		return 0, err
	}

	res, err := r.db.Collection(schema.AttendanceCollection).InsertMany(ctx, docs)
	if err != nil {
		return 0, wrapWriteError("failed to save attendance", err)
	}

	return len(res.InsertedIDs), nil
}

func (r *Repository) ensureEmployeesExist(ctx context.Context, refs map[primitive.ObjectID]struct{}) error {
	ids := make(bson.A, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}

	count, err := r.db.Collection(schema.EmployeesCollection).
		CountDocuments(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return fmt.Errorf("failed to check employee references: %w", err)
	}

	if count != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d references resolved", ErrUnknownEmployee, count, len(ids))
	}

	return nil
}

// ListAttendanceByEmployee returns the attendance of one employee, newest day first.
func (r *Repository) ListAttendanceByEmployee(
	ctx context.Context,
	employee primitive.ObjectID,
) ([]models.Attendance, error) {
	defer r.observe("list_attendance")()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.db.Collection(schema.AttendanceCollection).
		Find(ctx, bson.D{{Key: "employee", Value: employee}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]models.Attendance, 0)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}

	return result, nil
}
