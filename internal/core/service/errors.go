package service

import "errors"

// Failure taxonomy of the record layer. Handlers decide presentation:
// ErrNotFound becomes a 404, the other two re-render the form with an
// in-page message.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateIdentity = errors.New("an author with that username or email already exists")
	ErrInvalidReference  = errors.New("no author exists with that id")
)
