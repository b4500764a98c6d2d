// Package identity verifies bearer tokens issued by the identity provider.
package identity

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrSecretIsRequired = errors.New("jwt secret is required")

// JWTVerifier accepts HS256 tokens signed with a shared secret and carrying
// the caller's address in the "email" claim.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (kernel.Email, error) {
	if token == "" {
		return kernel.Email{}, errs.NewUnauthenticatedError("missing bearer token")
	}

	claims := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, v.key); err != nil {
		return kernel.Email{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	raw, ok := claims["email"].(string)
	if !ok {
		return kernel.Email{}, errs.NewUnauthenticatedError("token has no email claim")
	}

	email, err := kernel.NewEmail(raw)
	if err != nil {
		return kernel.Email{}, errs.NewUnauthenticatedErrorWithCause("token email is malformed", err)
	}
	return email, nil
}

func (v *JWTVerifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}
