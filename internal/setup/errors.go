// Package setup prepares a MongoDB database for HRMS Lite: it creates the collections
// and indexes and optionally seeds sample rows.
package setup

import "errors"

var (
	ErrNotInstalled = errors.New("mongodb is not installed")
	ErrUnreachable  = errors.New("mongodb service is not running or not accessible")
	ErrSchema       = errors.New("failed to create database schema")
	ErrSeed         = errors.New("failed to insert sample data")
	ErrCancelled    = errors.New("setup cancelled by user")
)
