// Package hooks provides the pre- and post-dispatch hooks installed on the
// route table: bearer token authorization for protected path prefixes, an
// audit post-hook, and a combinator running several hooks as one.
//
// Tokens are HMAC-SHA256 JWTs issued by [IssueToken] and verified by the
// [TokenParser] returned from [NewJWTParser].
package hooks
