// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"time"

	"github.com/jncrafts/storefront/internal/domain"
	"github.com/jncrafts/storefront/internal/ports"
	"github.com/jncrafts/storefront/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo      ports.OrderRepositoryPort
	blacklist ports.TokenBlacklistPort
}

var _ ports.AuthPort = (*AuthService)(nil)

func NewAuthService(repo ports.OrderRepositoryPort, blacklist ports.TokenBlacklistPort) *AuthService {
	return &AuthService{repo: repo, blacklist: blacklist}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}
	user, err := s.repo.CreateUser(ctx, email, string(hashedPassword))
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, err := auth.GenerateToken(email, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token not found in context")
	}
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return errors.New("invalid token")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, token, ttl)
}

// Authenticate resolves a bearer token to its claims, rejecting revoked tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, errors.New("invalid token")
	}
	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.New("token is blacklisted")
	}
	return claims, nil
}
