package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("requested entity not found")
)
