package repository

// Sentinel errors shared across the repositories. Handlers compare against
// these to pick a status code: a missing listing becomes HTTP 404 while a
// duplicate username on signup becomes HTTP 409.

import "errors"

// ErrListingNotFound indicates the requested listing id has no row.
var ErrListingNotFound = errors.New("listing not found")

// ErrUsernameExists is returned by UserRepo.Create when the username is
// already taken.
var ErrUsernameExists = errors.New("username already exists")
