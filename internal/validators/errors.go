package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID = errors.New("vault item id is required")
	ErrEmptyTitle    = errors.New("vault item title is required")
	ErrTitleTooLong  = errors.New("vault item title is too long")
	ErrEmptyPassword = errors.New("vault item password is required")
	ErrInvalidURL    = errors.New("vault item url is invalid")
)
