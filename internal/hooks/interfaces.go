package hooks

import "github.com/golang-jwt/jwt/v5"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_parser_mock.go -package=mock

// TokenParser verifies a raw bearer token and returns its claims.
type TokenParser interface {
	ParseToken(tokenString string) (*jwt.RegisteredClaims, error)
}
