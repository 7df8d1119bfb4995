package service

import (
	"errors"
	"strings"
)

// Business outcomes reported to callers. Handlers translate them to HTTP
// status codes with errors.Is; services wrap them with entity context.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

// isDuplicateKey reports whether err is a unique constraint violation.
// The pgx stdlib driver surfaces SQLSTATE 23505 in the error text.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
