package lingo

import "errors"

var (
	ErrEmptyLanguage = errors.New("lingo: language cannot be empty")
	ErrInvalidFile   = errors.New("lingo: invalid catalog file")
)
