package availability

import (
	"errors"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrWindowNotFound = errors.New("availability not found")
	// ErrNotOwned means the window exists but belongs to a different
	// artist than the request named. The delete must not proceed.
	ErrNotOwned = errors.New("invalid operation")
)
