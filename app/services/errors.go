package services

import "errors"

// ErrUnauthorized is returned by write operations called without a passing
// authorization verdict. It is checked before any validation.
var ErrUnauthorized = errors.New("unauthorized")
