package repository

import "errors"

// Not-found sentinels for the referential checks that run inside order
// transactions. Handlers map these to client errors; everything else coming
// out of this package is a persistence failure.
var (
	ErrMenuNotFound  = errors.New("menu item not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrTableNotFound = errors.New("restaurant table not found")
)
