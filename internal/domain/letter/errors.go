package letter

import "errors"

var (
	ErrLetterNotFound = errors.New("letter not found")
	ErrRenderFailed   = errors.New("failed to render letter document")
)
