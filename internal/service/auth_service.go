package service

import (
	"context"
	"fmt"
	"time"

	"inventory_control/internal/models"
	"inventory_control/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL          = 24 * time.Hour
	minPasswordLength = 6
)

// AuthService handles signup, credential checks, and JWT issuance.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
}

func NewAuthService(repo repository.Authorization, signingKey string) *AuthService {
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey)}
}

// Claims defines the JWT payload: username, user id, issued-at.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   int    `json:"userID"`
}

// SignUp validates the credentials, rejects username/email collisions, and
// stores the new user with a bcrypt hash. The returned user never carries the
// hash.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, invalidf("Username, email, and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, invalidf("Password must be at least %d characters long", minPasswordLength)
	}

	// One combined lookup, disambiguated afterwards to report which field
	// collided.
	existing, err := s.authRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.authRepo.Create(ctx, username, email, string(hash))
	if err != nil {
		return nil, err
	}

	return &models.User{ID: id, Username: username, Email: email}, nil
}

// GenerateToken validates credentials and returns a signed JWT valid for 24h.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", invalidf("Username and password are required")
	}

	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u)
}

// ParseToken verifies signature and expiry and returns the decoded claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: u.Username,
		UserID:   u.ID,
	})
	return token.SignedString(s.signingKey)
}
