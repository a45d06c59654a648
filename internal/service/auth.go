package service

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/truckload-service/config"
)

var (
	// ErrInvalidAPIKey is returned when an API key matches no configured key.
	ErrInvalidAPIKey = errors.New("invalid api key")
	// ErrInvalidToken is returned when a bearer token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokensDisabled is returned when no JWT secret is configured.
	ErrTokensDisabled = errors.New("bearer tokens are not configured")
)

// Authentication methods reported in Principal.Method.
const (
	MethodAPIKey = "api_key"
	MethodJWT    = "jwt"
)

// Principal identifies an authenticated caller.
type Principal struct {
	Subject string `json:"subject"`
	Method  string `json:"method"`
}

// Authenticator verifies API keys and bearer tokens.
type Authenticator interface {
	VerifyAPIKey(key string) (Principal, error)
	VerifyToken(token string) (Principal, error)
}

type apiKey struct {
	plain []byte
	hash  []byte
}

// AuthService checks credentials against the configured keys and JWT secret.
// It holds no per-request state.
type AuthService struct {
	keys   []apiKey
	secret []byte
	issuer string
	now    func() time.Time
}

// NewAuthService builds an AuthService from the auth configuration.
// Entries of APIKeys starting with a bcrypt prefix are treated as hashes.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	s := &AuthService{
		secret: []byte(cfg.JWTSecretKey),
		issuer: cfg.JWTIssuer,
		now:    time.Now,
	}
	for _, k := range cfg.APIKeys {
		if isBcryptHash(k) {
			s.keys = append(s.keys, apiKey{hash: []byte(k)})
		} else {
			s.keys = append(s.keys, apiKey{plain: []byte(k)})
		}
	}
	return s
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// HasAPIKeys reports whether any API key is configured.
func (s *AuthService) HasAPIKeys() bool {
	return len(s.keys) > 0
}

// HasTokens reports whether bearer tokens can be verified.
func (s *AuthService) HasTokens() bool {
	return len(s.secret) > 0
}

// VerifyAPIKey checks key against every configured key. The subject is a
// short digest of the key so logs never carry the key itself.
func (s *AuthService) VerifyAPIKey(key string) (Principal, error) {
	if key == "" {
		return Principal{}, ErrInvalidAPIKey
	}
	candidate := []byte(key)
	for _, k := range s.keys {
		var ok bool
		if k.hash != nil {
			ok = bcrypt.CompareHashAndPassword(k.hash, candidate) == nil
		} else {
			ok = subtle.ConstantTimeCompare(k.plain, candidate) == 1
		}
		if ok {
			return Principal{Subject: APIKeySubject(key), Method: MethodAPIKey}, nil
		}
	}
	return Principal{}, ErrInvalidAPIKey
}

// APIKeySubject returns the audit subject for an API key.
func APIKeySubject(key string) string {
	return "key:" + FingerprintString(xxhash.Sum64String(key))[:8]
}

// VerifyToken validates an HS256 token and returns its subject.
// Tokens must carry an expiry; the issuer is checked when configured.
func (s *AuthService) VerifyToken(tokenString string) (Principal, error) {
	if !s.HasTokens() {
		return Principal{}, ErrTokensDisabled
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	subject := claims.Subject
	if subject == "" {
		subject = "anonymous"
	}
	return Principal{Subject: subject, Method: MethodJWT}, nil
}

// IssueToken signs a token for subject valid for ttl.
func (s *AuthService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !s.HasTokens() {
		return "", ErrTokensDisabled
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// HashAPIKey returns the bcrypt hash to put in API_KEYS for key.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
