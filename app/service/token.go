package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-intent/app/entity"
)

var (
	ErrInvalidOwner  = errors.New("owner is required")
	ErrInvalidExpiry = errors.New("expires_in_days must be greater than 0")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
)

type AccessTokenRepository interface {
	Create(ctx context.Context, token *entity.AccessToken) error
	FindBySecretHash(ctx context.Context, secretHash string) (*entity.AccessToken, error)
}

type TokenService interface {
	Create(ctx context.Context, owner string, expiresInDays int) (string, *entity.AccessToken, error)
	Validate(ctx context.Context, secret string) (string, error)
}

type tokenService struct {
	tokenRepo AccessTokenRepository
}

func NewTokenService(tokenRepo AccessTokenRepository) TokenService {
	return &tokenService{tokenRepo: tokenRepo}
}

// Create mints a new access token and returns the raw secret. The secret is
// only ever available here; the repository stores its hash.
func (s *tokenService) Create(ctx context.Context, owner string, expiresInDays int) (string, *entity.AccessToken, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", nil, ErrInvalidOwner
	}
	if expiresInDays <= 0 {
		return "", nil, ErrInvalidExpiry
	}

	rawSecret, secretHash, err := generateTokenSecret()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	token := &entity.AccessToken{
		Owner:      owner,
		SecretHash: secretHash,
		IssuedAt:   now,
		ExpiresAt:  now.AddDate(0, 0, expiresInDays),
	}

	// A hash collision trips the unique key on secret_hash and surfaces as a
	// repository error.
	if err = s.tokenRepo.Create(ctx, token); err != nil {
		return "", nil, err
	}

	return rawSecret, token, nil
}

// Validate resolves a bearer secret to its owner. Not-found and expired are
// distinct errors here; callers facing the outside must collapse them.
func (s *tokenService) Validate(ctx context.Context, secret string) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", ErrTokenNotFound
	}

	token, err := s.tokenRepo.FindBySecretHash(ctx, hashTokenSecret(secret))
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", ErrTokenNotFound
	}
	if !time.Now().Before(token.ExpiresAt) {
		return "", ErrTokenExpired
	}

	return token.Owner, nil
}

func generateTokenSecret() (string, string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", "", err
	}

	rawSecret := "intent_" + hex.EncodeToString(secret)
	return rawSecret, hashTokenSecret(rawSecret), nil
}

func hashTokenSecret(rawSecret string) string {
	sum := sha256.Sum256([]byte(rawSecret))
	return hex.EncodeToString(sum[:])
}
