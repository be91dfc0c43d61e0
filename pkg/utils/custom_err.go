package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryUnresolvable   = errors.New("category could not be resolved")
	ErrSchemaInvalid          = errors.New("invalid question schema")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)
