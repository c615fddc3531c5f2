package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoFiles is returned when an upload carries no files.
	ErrNoFiles = errors.New("no files uploaded")
	// ErrTooManyFiles is returned when an upload exceeds the file limit.
	ErrTooManyFiles = errors.New("too many files")
	// ErrUnsupportedFileType is returned for anything but jpg, jpeg, png, gif or webp.
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	// ErrFileTooLarge is returned when a single file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
)
