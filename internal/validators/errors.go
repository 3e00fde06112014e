package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNotARequest        = errors.New("message is not an in-flight request")
	ErrEmptyBody          = errors.New("request body is required")
	ErrMissingContentType = errors.New("content type header is required")
	ErrInvalidContentType = errors.New("invalid content type header")
	ErrUnsupportedMethod  = errors.New("unsupported request method")
)
