package store

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("store: required parameter is nil")

	// ErrEmptyAppTag indicates a record has no application tag.
	ErrEmptyAppTag = errors.New("store: application tag must not be empty")

	// ErrDuplicateRecord indicates a record for the txid and tag already exists.
	ErrDuplicateRecord = errors.New("store: duplicate record")

	// ErrRecordNotFound indicates no record exists for the txid and tag.
	ErrRecordNotFound = errors.New("store: record not found")
)
