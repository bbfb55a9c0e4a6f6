package service

import (
	"context"
	"fmt"
	"time"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminSubject is the JWT subject carried by admin tokens.
const AdminSubject = "admin"

type AuthService interface {
	// Login exchanges the shared admin password for a signed token. The
	// credential gate is then evaluated per request by the middleware, not
	// read from ambient session state.
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	passwordHash []byte
	secret       string
	tokenTTL     time.Duration
}

func NewAuthService(adminPassword, secret string, tokenTTL time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authService{
		passwordHash: hash,
		secret:       secret,
		tokenTTL:     tokenTTL,
	}, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("%w: incorrect password", apperror.ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}
