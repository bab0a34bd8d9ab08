package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)

// DuplicateContactError names the contact field that collided with an
// existing record. It satisfies errors.Is(err, ErrConflict).
type DuplicateContactError struct {
	Field string // ContactEmail or ContactPhone
}

func (e *DuplicateContactError) Error() string {
	if e.Field == ContactPhone {
		return "Phone already registered"
	}
	return "Email already registered"
}

func (e *DuplicateContactError) Is(target error) bool { return target == ErrConflict }
