package domain

import "errors"

// Store errors shared by every resource.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrCategoryNotFound = errors.New("category not found")
)

var ErrUploadFailed = errors.New("image upload failed")
var ErrInvalidBody = errors.New("body must be valid JSON")

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
