package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/UnknownOlympus/hrms-lite/internal/schema"
)

// SaveEmployees inserts employees in order and returns their generated identities.
// Timestamps are stamped here; an existing employee_id fails with ErrDuplicate.
func (r *Repository) SaveEmployees(ctx context.Context, employees []models.Employee) ([]primitive.ObjectID, error) {
	defer r.observe("save_employees")()

	if len(employees) == 0 {
		return nil, nil
	}

	now := r.now().UTC()
	docs := make([]any, 0, len(employees))
	ids := make([]primitive.ObjectID, 0, len(employees))

	for _, employee := range employees {
		if err := r.validate.Struct(employee); err != nil {
			return nil, fmt.Errorf("%w: employee %q: %w", ErrInvalid, employee.EmployeeID, err)
		}
		if employee.ID.IsZero() {
			employee.ID = primitive.NewObjectID()
		}
		employee.CreatedAt = now
		employee.UpdatedAt = now

		docs = append(docs, employee)
		ids = append(ids, employee.ID)
	}

	if _, err := r.db.Collection(schema.EmployeesCollection).InsertMany(ctx, docs); err != nil {
		return nil, wrapWriteError("failed to save employees", err)
	}

	return ids, nil
}

// ListEmployees returns every employee ordered by employee_id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees")()

	opts := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}})

	cursor, err := r.db.Collection(schema.EmployeesCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]models.Employee, 0)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	return result, nil
}

// GetEmployeeByEmployeeID retrieves an employee by its business identifier.
func (r *Repository) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (models.Employee, error) {
	defer r.observe("get_employee_by_id")()

	var result models.Employee

	err := r.db.Collection(schema.EmployeesCollection).
		FindOne(ctx, bson.D{{Key: "employee_id", Value: employeeID}}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, fmt.Errorf("employee %q: %w", employeeID, ErrNotFound)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}
