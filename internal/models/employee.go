package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee represents an employee entity.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeID string             `bson:"employee_id"   json:"employee_id" validate:"required,max=64"`
	FullName   string             `bson:"full_name"     json:"full_name"   validate:"required"`
	Email      string             `bson:"email"         json:"email"       validate:"required,email"`
	Department string             `bson:"department"    json:"department"  validate:"required"`
	CreatedAt  time.Time          `bson:"created_at"    json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"    json:"updated_at"`
}
