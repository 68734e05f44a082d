package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	pkgauth "github.com/davidmorales/storefront-backend/pkg/auth"
	"github.com/davidmorales/storefront-backend/pkg/config"
	pkgerrors "github.com/davidmorales/storefront-backend/pkg/errors"
	"github.com/davidmorales/storefront-backend/pkg/security"
)

// CredentialVerifier checks a username/password pair. Implementations own the
// secret material; the login service never sees it.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// Service authenticates the administrator and mints access tokens.
type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginResult carries the minted token back to the HTTP layer.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type service struct {
	verifier CredentialVerifier
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewService builds the admin auth service.
func NewService(verifier CredentialVerifier, jwtCfg config.JWTConfig) (Service, error) {
	if verifier == nil {
		return nil, fmt.Errorf("credential verifier required")
	}
	return &service{
		verifier: verifier,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify credentials")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		Username: username,
		Role:     pkgauth.RoleAdmin,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.jwtCfg.AccessTokenTTL()),
	}, nil
}

// envVerifier matches against the single admin credential from config. The
// stored secret is an Argon2id hash, never plaintext.
type envVerifier struct {
	username     string
	passwordHash string
}

// NewEnvVerifier builds the default config-backed credential verifier.
func NewEnvVerifier(cfg config.AdminConfig) CredentialVerifier {
	return &envVerifier{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
	}
}

func (v *envVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	// Constant-time compare; the hash check below dominates timing anyway.
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	ok, err := security.VerifyPassword(password, v.passwordHash)
	if err != nil {
		return false, fmt.Errorf("verify password: %w", err)
	}
	return userMatch && ok, nil
}
