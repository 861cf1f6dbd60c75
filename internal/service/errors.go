package service

import "errors"

var (
	ErrInvalidBatchSize = errors.New("batch size must be positive")
)
