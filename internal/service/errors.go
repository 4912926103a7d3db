package service

import "errors"

var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrConfiguration aborts a whole pipeline run before any row is touched.
	ErrConfiguration = errors.New("missing required setting")
)
