package entry

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("entry not found")
	ErrInvalidFields = errors.New("all entry fields are required")
)
