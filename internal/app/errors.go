package app

import "errors"

var (
	// ErrNotFound means no window owner name contained the fragment.
	ErrNotFound = errors.New("no matching application")

	// ErrInvalidProcess means a window matched but carried no usable pid.
	ErrInvalidProcess = errors.New("matched window has no usable process identifier")
)
