package intrusive

import "errors"

var (
	// ErrEmptyRef indicates an attempt to insert a Ref whose ownership has
	// already been transferred (or that was never adopted).
	ErrEmptyRef = errors.New("intrusive: reference is empty")
)
