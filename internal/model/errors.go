package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique attribute is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials covers unknown users, wrong passwords and unreadable credential records alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStorageDisabled is returned when object storage is not configured.
	ErrStorageDisabled = errors.New("object storage is not configured")
	// ErrCaptchaRejected is returned when a challenge response is missing or was not accepted.
	ErrCaptchaRejected = errors.New("captcha verification failed")
	// ErrInvalidInput marks request values a service refused before touching storage.
	ErrInvalidInput = errors.New("invalid input")
)
