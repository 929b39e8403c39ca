package data

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateEntry = errors.New("models: duplicate header entry")
)
