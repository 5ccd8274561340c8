package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

var (
	// ErrInvalidCredentials is returned when username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService authenticates the two configured operator accounts and issues
// role-bearing tokens. Everyone else browses as a guest without logging in.
type AuthService interface {
	// Login verifies credentials and returns a signed token plus the role.
	Login(username, password string) (string, model.Role, error)
	// ValidateToken parses a token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// account is one configured operator credential.
type account struct {
	passwordHash []byte
	role         model.Role
}

// AuthServiceImpl implements AuthService with an in-process account table.
type AuthServiceImpl struct {
	accounts  map[string]account
	secretKey []byte
	tokenTTL  time.Duration
}

// claimsWithJWT couples domain claims with JWT registered claims.
type claimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// NewAuthService creates an AuthService from configuration. Passwords are
// bcrypt-hashed at construction so plaintext never lives beyond startup.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	accounts := make(map[string]account, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		role := model.Role(acc.Role)
		if !role.Valid() {
			return nil, errors.New("unknown role for account " + acc.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		accounts[acc.Username] = account{passwordHash: hash, role: role}
	}

	return &AuthServiceImpl{
		accounts:  accounts,
		secretKey: []byte(cfg.JWTSecretKey),
		tokenTTL:  cfg.TokenTTL,
	}, nil
}

// Login verifies the credentials and returns a signed token plus the role.
func (s *AuthServiceImpl) Login(username, password string) (string, model.Role, error) {
	acc, ok := s.accounts[username]
	if !ok {
		// Burn comparable time so unknown users are indistinguishable.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0q1QxGa53F/KjP1p0mzYqKQeK6W"),
			[]byte(password))
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &claimsWithJWT{
		Claims: dto.Claims{
			Username: username,
			Role:     acc.role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", "", err
	}
	return token, acc.role, nil
}

// ValidateToken parses and validates a token, returning its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*claimsWithJWT); ok && token.Valid {
		return &claims.Claims, nil
	}
	return nil, ErrInvalidToken
}
