package service

import "errors"

// Common service errors
var (
	ErrNoCategories = errors.New("no categories")
	ErrPageNotFound = errors.New("page not found")
)
