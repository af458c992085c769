package services

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/config"
	"github.com/shopease/core/internal/infrastructure/logger"
)

// adminID is the fixed identity of the single back-office admin.
const adminID = "admin1"

// Claims represents the JWT claims carried by login-issued tokens
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest carries the admin credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the login payload: the bearer token plus the admin record
type LoginResponse struct {
	Token string         `json:"token"`
	Admin entities.Admin `json:"admin"`
}

// AuthService handles admin authentication. There is a single admin identity
// configured at startup. The bearer credential the middleware admits is
// either the configured static API token or a JWT issued by Login.
type AuthService struct {
	cfg    config.AuthConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, logger *logger.Logger) *AuthService {
	return &AuthService{cfg: cfg, logger: logger}
}

// Admin returns the configured back-office identity.
func (s *AuthService) Admin() entities.Admin {
	return entities.Admin{
		ID:    adminID,
		Name:  s.cfg.AdminName,
		Email: s.cfg.AdminEmail,
	}
}

// Login checks the credentials against the configured admin and returns the
// bearer token the client should present on admin routes.
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.cfg.AdminEmail)) != 1 {
		return nil, entities.ErrInvalidCredentials
	}

	if err := s.comparePassword(req.Password); err != nil {
		return nil, entities.ErrInvalidCredentials
	}

	token := s.cfg.APIToken
	if token == "" {
		signed, err := s.generateAccessToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate access token: %w", err)
		}
		token = signed
	}

	s.logger.Info("Admin logged in", "email", s.cfg.AdminEmail)

	return &LoginResponse{
		Token: token,
		Admin: s.Admin(),
	}, nil
}

// ValidateToken checks a presented bearer token. The static API token is
// always accepted when configured; otherwise the token must be a valid JWT
// signed with the configured secret.
func (s *AuthService) ValidateToken(token string) (entities.Admin, error) {
	if s.cfg.APIToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.APIToken)) == 1 {
		return s.Admin(), nil
	}

	if s.cfg.Secret == "" {
		return entities.Admin{}, entities.ErrInvalidCredentials
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return entities.Admin{}, entities.ErrInvalidCredentials
	}

	if claims.Email != s.cfg.AdminEmail {
		return entities.Admin{}, entities.ErrInvalidCredentials
	}

	return s.Admin(), nil
}

// comparePassword supports both a bcrypt hash and a plain value in config.
func (s *AuthService) comparePassword(password string) error {
	stored := s.cfg.AdminPassword

	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return entities.ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) generateAccessToken() (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: s.cfg.AdminEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.ExpiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
