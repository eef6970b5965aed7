package shows

import (
	"errors"
)

var (
	// ErrUnknownReference means the submitted artist or venue ID does not
	// exist; the FK violation does not say which one.
	ErrUnknownReference = errors.New("artist or venue does not exist")
)
