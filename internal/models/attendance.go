package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Attendance is a single day mark for one employee. Employee holds the _id of the
// referenced employee document, not its employee_id.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Employee  primitive.ObjectID `bson:"employee"      json:"employee"   validate:"required"`
	Date      time.Time          `bson:"date"          json:"date"       validate:"required"`
	Status    AttendanceStatus   `bson:"status"        json:"status"     validate:"required,oneof=Present Absent"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"    json:"updated_at"`
}

// Day returns the calendar day of t in its own location, stored as midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
