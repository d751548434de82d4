package services

import "errors"

// ErrNotFound is returned, wrapped, when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput marks a request the service refuses to process.
var ErrInvalidInput = errors.New("invalid input")
