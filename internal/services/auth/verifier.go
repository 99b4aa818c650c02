// filepath: internal/services/auth/verifier.go
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"apodapi/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Issuer is the iss claim of ingest tokens.
const Issuer = "apodapi"

// ErrInvalidKey is returned for a missing or rejected key.
var ErrInvalidKey = errors.New("invalid or missing API key")

// KeyVerifier checks the credential sent in the x-api-key header.
type KeyVerifier interface {
	Verify(ctx context.Context, key string) error
}

// NewKeyVerifier selects the verifier for cfg.Mode.
func NewKeyVerifier(cfg config.AuthConfig) (KeyVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeStatic, "":
		return NewStaticKeyVerifier(cfg.APIKey), nil
	case config.AuthModeBcrypt:
		return NewBcryptKeyVerifier(cfg.APIKeyHash)
	case config.AuthModeJWT:
		return NewJWTKeyVerifier(cfg.JWTSecret), nil
	default:
		return nil, fmt.Errorf("unknown auth mode: %s", cfg.Mode)
	}
}

// StaticKeyVerifier compares against a shared secret.
type StaticKeyVerifier struct {
	key []byte
}

func NewStaticKeyVerifier(key string) *StaticKeyVerifier {
	return &StaticKeyVerifier{key: []byte(key)}
}

// Verify rejects every key when no secret is configured.
func (v *StaticKeyVerifier) Verify(_ context.Context, key string) error {
	if len(v.key) == 0 || key == "" {
		return ErrInvalidKey
	}
	if subtle.ConstantTimeCompare(v.key, []byte(key)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// BcryptKeyVerifier compares against a bcrypt hash so the plain key never
// has to be stored in the config.
type BcryptKeyVerifier struct {
	hash []byte
}

func NewBcryptKeyVerifier(hash string) (*BcryptKeyVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid api key hash: %w", err)
	}
	return &BcryptKeyVerifier{hash: []byte(hash)}, nil
}

func (v *BcryptKeyVerifier) Verify(_ context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return ErrInvalidKey
	}
	return nil
}

// HashKey returns the bcrypt hash to put in auth.api_key_hash.
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ingestClaims are the claims of a token allowed to call POST /apod.
type ingestClaims struct {
	jwt.RegisteredClaims
}

// JWTKeyVerifier accepts HS256 tokens signed with a shared secret.
type JWTKeyVerifier struct {
	secret []byte
}

func NewJWTKeyVerifier(secret string) *JWTKeyVerifier {
	return &JWTKeyVerifier{secret: []byte(secret)}
}

// Verify checks signature, issuer and expiry.
func (v *JWTKeyVerifier) Verify(_ context.Context, key string) error {
	if key == "" || len(v.secret) == 0 {
		return ErrInvalidKey
	}

	token, err := jwt.ParseWithClaims(key, &ingestClaims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return nil
}

// IssueToken signs a token for subject that expires after ttl.
func (v *JWTKeyVerifier) IssueToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ingestClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
