package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates an operation that is illegal for the entry's current status,
// e.g. posting an already posted entry or editing a posted one.
var ErrInvalidState = errors.New("operation not allowed in current state")

// ErrContention indicates that the sequence counter row lock could not be acquired
// within the configured timeout. The whole calling operation should be retried.
var ErrContention = errors.New("sequence counter lock contention")

// ErrProtectedResource indicates an attempt to delete a system-seeded account or an
// account that still carries children or journal history.
var ErrProtectedResource = errors.New("resource is protected")

// ErrAlreadyPosted indicates that a source document is already linked to a journal entry.
var ErrAlreadyPosted = errors.New("document already posted")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
