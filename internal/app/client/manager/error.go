package manager

import (
	"errors"
)

var (
	// ErrBusy rejects an operation while another one is in flight.
	ErrBusy = errors.New("operation already in progress")
	// ErrDraftIncomplete rejects a submit with empty fields.
	ErrDraftIncomplete = errors.New("all draft fields are required")
)
