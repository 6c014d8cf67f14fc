package models

import "errors"

// The four failure kinds surfaced by the application. Controllers map these
// to HTTP statuses and pages; services and repositories return them wrapped
// with context.
var (
	// ErrNotFound means the requested car id or username is absent.
	ErrNotFound = errors.New("record not found")

	// ErrConflict covers duplicate usernames/emails at registration and
	// malformed or missing form fields.
	ErrConflict = errors.New("validation conflict")

	// ErrUnauthenticated means the session cookie is missing, malformed,
	// wrongly signed, or expired.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAuthFailed means the login credentials did not match.
	ErrAuthFailed = errors.New("invalid username or password")
)
