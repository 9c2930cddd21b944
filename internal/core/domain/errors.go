package domain

import "errors"

// ErrInvalidCredentials covers both unknown-username and wrong-password login
// failures. The two causes must stay indistinguishable on the response path.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrJokeNotFound = errors.New("joke not found")
var ErrForbidden = errors.New("access forbidden")

// ErrNotImplemented marks the deliberately unfinished registration flow.
var ErrNotImplemented = errors.New("not implemented")
