package template

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	// Template deletion has no defined contract yet; the operation is
	// rejected rather than guessed at.
	ErrDeleteNotSupported = errors.New("template deletion is not supported")
)
