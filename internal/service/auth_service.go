package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`
	// TokenType distinguishes access from refresh tokens.
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users      repository.UserRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenPairResponse, error) {
	var empty dto.TokenPairResponse

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return empty, ErrInvalidCredentials
		}
		return empty, err
	}
	if !u.Active {
		return empty, ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return empty, ErrInvalidCredentials
	}

	return s.issuePair(u)
}

func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (dto.TokenPairResponse, error) {
	var empty dto.TokenPairResponse

	claims, err := s.Parse(req.RefreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return empty, ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return empty, ErrInvalidToken
		}
		return empty, err
	}
	if !u.Active {
		return empty, ErrUserInactive
	}
	return s.issuePair(u)
}

// Parse validates the signature and expiry and returns the claims.
func (s *AuthService) Parse(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (s *AuthService) issuePair(u *model.User) (dto.TokenPairResponse, error) {
	access, err := s.sign(u, "access", s.accessTTL)
	if err != nil {
		return dto.TokenPairResponse{}, err
	}
	refresh, err := s.sign(u, "refresh", s.refreshTTL)
	if err != nil {
		return dto.TokenPairResponse{}, err
	}
	return dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(u),
	}, nil
}

func (s *AuthService) sign(u *model.User, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    u.ID,
		Role:      string(u.Role),
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
