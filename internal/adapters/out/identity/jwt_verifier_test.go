package identity_test

import (
	"context"
	"testing"
	"time"

	"zapshift/internal/adapters/out/identity"
	"zapshift/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := identity.NewJWTVerifier("")
	require.ErrorIs(t, err, identity.ErrSecretIsRequired)
}

func TestJWTVerifier_Verify(t *testing.T) {
	v, err := identity.NewJWTVerifier(secret)
	require.NoError(t, err)

	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "Nadia@Mail.com", "exp": future}),
			want:  "nadia@mail.com",
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
		{
			name:    "wrong secret",
			token:   signed(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"email": "nadia@mail.com", "exp": future}),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "nadia@mail.com", "exp": past}),
			wantErr: true,
		},
		{
			name:    "no expiry",
			token:   signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "nadia@mail.com"}),
			wantErr: true,
		},
		{
			name:    "other algorithm",
			token:   signed(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{"email": "nadia@mail.com", "exp": future}),
			wantErr: true,
		},
		{
			name:    "missing email",
			token:   signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "42", "exp": future}),
			wantErr: true,
		},
		{
			name:    "malformed email",
			token:   signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "nobody", "exp": future}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := v.Verify(context.Background(), tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrUnauthenticated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestJWTVerifier_Verify_AllowsClockSkew(t *testing.T) {
	v, err := identity.NewJWTVerifier(secret)
	require.NoError(t, err)

	justExpired := time.Now().Add(-10 * time.Second).Unix()
	token := signed(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"email": "karim@zapshift.io", "exp": justExpired})

	email, err := v.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "karim@zapshift.io", email.String())
}
