package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrForeignKey means a write referenced a parent row that does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)
