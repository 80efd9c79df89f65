package service

import "errors"

// Sentinel results shared by every entity service. Handlers translate these
// into HTTP responses; nothing else inspects store errors.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateKey       = errors.New("duplicate key")
)
