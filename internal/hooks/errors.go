package hooks

import "errors"

// Sentinel errors of the bearer token hook and the JWT helpers. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected request
	// carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer scheme is present but the
	// token itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenIsExpired is returned for a well-formed token past its expiry.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid is returned for every other token failure:
	// bad signature, wrong issuer, malformed input or missing subject.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidTokenParams is returned by [IssueToken] when a parameter is
	// empty or the duration is not positive.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
)
