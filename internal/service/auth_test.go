//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/truckload-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func hashForTest(t *testing.T, key string) string {
	t.Helper()
	// MinCost keeps the test fast
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_VerifyAPIKey(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{
		APIKeys: []string{"plain-key", hashForTest(t, "hashed-key")},
	})

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "plain key", key: "plain-key"},
		{name: "bcrypt hashed key", key: "hashed-key"},
		{name: "wrong key", key: "nope", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
		{name: "prefix of plain key", key: "plain", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.VerifyAPIKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAPIKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MethodAPIKey, p.Method)
			assert.Equal(t, APIKeySubject(tt.key), p.Subject)
			assert.NotContains(t, p.Subject, tt.key)
		})
	}
}

func TestAuthService_HasCredentials(t *testing.T) {
	assert.False(t, NewAuthService(config.AuthConfig{}).HasAPIKeys())
	assert.False(t, NewAuthService(config.AuthConfig{}).HasTokens())
	assert.True(t, NewAuthService(config.AuthConfig{APIKeys: []string{"k"}}).HasAPIKeys())
	assert.True(t, NewAuthService(config.AuthConfig{JWTSecretKey: testSecret}).HasTokens())
}

func TestAuthService_VerifyToken(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewAuthService(config.AuthConfig{JWTSecretKey: testSecret, JWTIssuer: "dispatch"})
	svc.now = func() time.Time { return now }

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key interface{}) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{
		Subject:   "planner-7",
		Issuer:    "dispatch",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name        string
		token       string
		wantSubject string
	}{
		{
			name:        "valid token",
			token:       sign(valid, jwt.SigningMethodHS256, []byte(testSecret)),
			wantSubject: "planner-7",
		},
		{
			name: "expired",
			token: sign(jwt.RegisteredClaims{
				Subject: "x", Issuer: "dispatch", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name: "missing expiry",
			token: sign(jwt.RegisteredClaims{Subject: "x", Issuer: "dispatch"},
				jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name: "wrong issuer",
			token: sign(jwt.RegisteredClaims{
				Subject: "x", Issuer: "other", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}, jwt.SigningMethodHS256, []byte(testSecret)),
		},
		{
			name:  "wrong secret",
			token: sign(valid, jwt.SigningMethodHS256, []byte("another-secret")),
		},
		{
			name:  "other algorithm",
			token: sign(valid, jwt.SigningMethodHS512, []byte(testSecret)),
		},
		{
			name:  "garbage",
			token: "not.a.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.VerifyToken(tt.token)
			if tt.wantSubject == "" {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Principal{Subject: tt.wantSubject, Method: MethodJWT}, p)
		})
	}
}

func TestAuthService_IssueToken(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{JWTSecretKey: testSecret, JWTIssuer: "dispatch"})

	token, err := svc.IssueToken("planner-1", time.Hour)
	require.NoError(t, err)

	p, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "planner-1", p.Subject)

	_, err = NewAuthService(config.AuthConfig{}).IssueToken("x", time.Hour)
	assert.ErrorIs(t, err, ErrTokensDisabled)
	_, err = NewAuthService(config.AuthConfig{}).VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokensDisabled)
}

func TestHashAPIKey(t *testing.T) {
	hash, err := HashAPIKey("fresh-key")
	require.NoError(t, err)
	assert.True(t, isBcryptHash(hash))

	svc := NewAuthService(config.AuthConfig{APIKeys: []string{hash}})
	_, err = svc.VerifyAPIKey("fresh-key")
	assert.NoError(t, err)
}
