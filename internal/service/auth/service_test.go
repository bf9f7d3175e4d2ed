package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/auth"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/user"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/jwt"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	panic("not used")
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	panic("not used")
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return f.getByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	panic("not used")
}

func testJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret-key-for-jwt", "1h")
}

func adminUserRepo(t *testing.T, password string) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			if username != "admin" {
				return user.User{}, user.ErrUserNotFound
			}
			return user.User{
				ID:           "user-1",
				Username:     "admin",
				Name:         "Administrador",
				PasswordHash: string(hash),
				Role:         user.RoleAdmin,
			}, nil
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(adminUserRepo(t, "admin123"), testJWTService())

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "Administrador", result.Name)
	assert.Equal(t, string(user.RoleAdmin), result.Role)
	assert.Positive(t, result.ExpiresAt)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(adminUserRepo(t, "admin123"), testJWTService())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc := NewAuthService(adminUserRepo(t, "admin123"), testJWTService())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "admin123",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, testJWTService())

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"missing username", auth.LoginRequest{Password: "x"}},
		{"missing password", auth.LoginRequest{Username: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}
