package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

func testAuthService(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{
		JWTSecretKey: "test-secret",
		TokenTTL:     time.Hour,
		Accounts: []config.AccountConfig{
			{Username: "zwz", Password: "zhangwu1992", Role: "zwz"},
			{Username: "admin", Password: "zj123456", Role: "admin"},
		},
	})
	require.NoError(t, err)
	return svc
}

func TestAuthServiceLogin(t *testing.T) {
	svc := testAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantRole model.Role
		wantErr  error
	}{
		{"owner login", "zwz", "zhangwu1992", model.RoleZWZ, nil},
		{"admin login", "admin", "zj123456", model.RoleAdmin, nil},
		{"wrong password", "admin", "nope", "", ErrInvalidCredentials},
		{"unknown user", "eve", "zj123456", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, role, err := svc.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestAuthServiceValidateToken(t *testing.T) {
	svc := testAuthService(t)

	t.Run("round-trip", func(t *testing.T) {
		token, _, err := svc.Login("admin", "zj123456")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, model.RoleAdmin, claims.Role)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := NewAuthService(config.AuthConfig{
			JWTSecretKey: "different-secret",
			TokenTTL:     time.Hour,
			Accounts:     []config.AccountConfig{{Username: "admin", Password: "pw", Role: "admin"}},
		})
		require.NoError(t, err)

		token, _, err := other.Login("admin", "pw")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, err := NewAuthService(config.AuthConfig{
			JWTSecretKey: "test-secret",
			TokenTTL:     -time.Minute,
			Accounts:     []config.AccountConfig{{Username: "admin", Password: "pw", Role: "admin"}},
		})
		require.NoError(t, err)

		token, _, err := shortLived.Login("admin", "pw")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewAuthServiceRejectsUnknownRole(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{
		JWTSecretKey: "s",
		TokenTTL:     time.Hour,
		Accounts:     []config.AccountConfig{{Username: "x", Password: "y", Role: "superuser"}},
	})
	assert.Error(t, err)
}
