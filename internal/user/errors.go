package user

import "errors"

var (
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("user not found")
)
