package repository

import "errors"

// errNoMatch aborts a collection update without saving when no record
// matched; it never escapes the repository layer.
var errNoMatch = errors.New("no matching record")

// ErrDuplicateID is returned when an insert would violate the
// case-insensitive ID uniqueness of the users collection.
var ErrDuplicateID = errors.New("record with this ID already exists")
