// Package common defines shared sentinel errors used across the labpool
// packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (bad caller input, rejected before any store access).
	ErrInvalidArgument = errors.New("invalid argument")

	// Configuration errors (required naming settings absent at construction).
	ErrNotConfigured = errors.New("not configured")

	// Data errors (stored bytes present but not decodable as a record).
	ErrCorruptRecord = errors.New("corrupt record")
)
