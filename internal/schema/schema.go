// Package schema declares the MongoDB collections used by HRMS Lite together with
// the indexes and document validators that enforce their shape.
package schema

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultDatabase is used when the connection URI carries no database path.
	DefaultDatabase = "hrms_lite"
	// DefaultURI points at a local mongod on the default port.
	DefaultURI = "mongodb://localhost:27017/" + DefaultDatabase

	EmployeesCollection  = "employees"
	AttendanceCollection = "attendance"
)

// Collection describes one collection and everything that must exist on it.
type Collection struct {
	Name      string
	Validator bson.M
	Indexes   []mongo.IndexModel
}

// Collections returns the definitions in creation order. A fresh slice is built on
// every call because index models carry mutable option pointers.
func Collections() []Collection {
	return []Collection{
		{
			Name:      EmployeesCollection,
			Validator: employeeValidator(),
			Indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "email", Value: 1}}},
			},
		},
		{
			Name:      AttendanceCollection,
			Validator: attendanceValidator(),
			Indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "employee", Value: 1}, {Key: "date", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
				{Keys: bson.D{{Key: "date", Value: 1}}},
				{Keys: bson.D{{Key: "status", Value: 1}}},
			},
		},
	}
}

func employeeValidator() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"employee_id", "full_name", "email", "department"},
		"properties": bson.M{
			"employee_id": bson.M{"bsonType": "string"},
			"full_name":   bson.M{"bsonType": "string"},
			"email":       bson.M{"bsonType": "string"},
			"department":  bson.M{"bsonType": "string"},
			"created_at":  bson.M{"bsonType": "date"},
			"updated_at":  bson.M{"bsonType": "date"},
		},
	}}
}

func attendanceValidator() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"employee", "date", "status"},
		"properties": bson.M{
			"employee":   bson.M{"bsonType": "objectId"},
			"date":       bson.M{"bsonType": "date"},
			"status":     bson.M{"enum": bson.A{"Present", "Absent"}},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	}}
}

// ResolveDatabase returns the database named in the path of a MongoDB connection URI,
// or DefaultDatabase when the URI has no path. The URI is not validated, so
// mongodb+srv hosts are never looked up.
func ResolveDatabase(uri string) string {
	_, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return DefaultDatabase
	}

	// Userinfo and the host list cannot contain an unescaped '/'.
	_, path, ok := strings.Cut(rest, "/")
	if !ok {
		return DefaultDatabase
	}
	path, _, _ = strings.Cut(path, "?")

	name, err := url.PathUnescape(path)
	if err != nil || name == "" {
		return DefaultDatabase
	}

	return name
}

// ServerURI strips the database path from uri and keeps its options. Credentials in
// the stripped URI authenticate against admin unless authSource says otherwise.
func ServerURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}

	hosts, path, ok := strings.Cut(rest, "/")
	if !ok {
		return uri
	}

	server := scheme + "://" + hosts + "/"
	if _, query, hasQuery := strings.Cut(path, "?"); hasQuery {
		server += "?" + query
	}

	return server
}
