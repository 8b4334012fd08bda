package domain

import "errors"

var (
	// ErrNoDocuments is returned when the data directory holds nothing to ingest.
	ErrNoDocuments = errors.New("no documents found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch is returned when a vector does not match the store dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrDuplicateChunkID is returned when a batch carries the same chunk id twice.
	ErrDuplicateChunkID = errors.New("duplicate chunk id")

	// ErrUnknownBackend is returned by factories for an unsupported type name.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrMissingAPIKey is returned when a remote client has no credential.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrEmptyResponse is returned when a remote API answers without a payload.
	ErrEmptyResponse = errors.New("empty response")
)
