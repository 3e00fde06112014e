// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hooks

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken creates a signed HMAC-SHA256 JWT.
//
// The token carries the standard claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): subject
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus duration
//
// Example usage:
//
//	token, err := hooks.IssueToken("ops", "dispatch", time.Hour, "secret")
func IssueToken(subject, issuer string, duration time.Duration, signKey string) (string, error) {
	if subject == "" || issuer == "" || signKey == "" || duration <= 0 {
		return "", ErrInvalidTokenParams
	}

	return signToken(subject, issuer, time.Now(), duration, signKey)
}

func signToken(subject, issuer string, now time.Time, duration time.Duration, signKey string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// jwtParser is the [TokenParser] backed by golang-jwt.
type jwtParser struct {
	signKey []byte
	parser  *jwt.Parser
}

// NewJWTParser returns a [TokenParser] that accepts HS256 tokens signed with
// signKey, issued by issuer and carrying an expiry.
func NewJWTParser(signKey, issuer string) TokenParser {
	return &jwtParser{
		signKey: []byte(signKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// yield [ErrTokenIsExpired]; every other failure [ErrTokenIsExpiredOrInvalid].
func (p *jwtParser) ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := p.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.signKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrTokenIsExpiredOrInvalid)
	}

	return claims, nil
}
