package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired  = errors.New("title is required")
	ErrInvalidNoteID  = errors.New("invalid note id")
	ErrEmptyTimestamp = errors.New("timestamp is required")
)
