// Package auth contains authentication use cases.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scraptrade/backend/internal/application/adapter"
	"github.com/scraptrade/backend/internal/domain/entity"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/adapters"
	"github.com/scraptrade/backend/internal/integration/persistence"
	"github.com/scraptrade/backend/internal/integration/persistence/model"
)

type authFixture struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	login           *LoginUserUseCase
	changePassword  *ChangePasswordUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	userRepo := persistence.NewUserRepository(db)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("test-secret", time.Hour)

	return &authFixture{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		login:           NewLoginUserUseCase(userRepo, passwordService, tokenService),
		changePassword:  NewChangePasswordUseCase(userRepo, passwordService),
	}
}

func (f *authFixture) createUser(t *testing.T, email, password string, active bool) *entity.User {
	t.Helper()

	hash, err := f.passwordService.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := entity.NewUser(email, "Test Operator", hash, false)
	user.IsActive = active
	if err := f.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		output, err := f.login.Execute(ctx, LoginUserInput{Email: "owner@scraptrade.local", Password: "SecurePass123!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, output.User.ID)
		}
		claims, err := f.tokenService.ValidateAccessToken(ctx, output.AccessToken)
		if err != nil {
			t.Fatalf("expected token to validate, got %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected claims for %s, got %s", user.ID, claims.UserID)
		}
		if claims.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, claims.Email)
		}
	})

	t.Run("email lookup ignores case and whitespace", func(t *testing.T) {
		f := newAuthFixture(t)
		f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		if _, err := f.login.Execute(ctx, LoginUserInput{Email: "  Owner@Scraptrade.Local ", Password: "SecurePass123!"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		f := newAuthFixture(t)
		f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		for _, input := range []LoginUserInput{
			{Email: "owner@scraptrade.local", Password: "wrong-password"},
			{Email: "nobody@scraptrade.local", Password: "SecurePass123!"},
		} {
			_, err := f.login.Execute(ctx, input)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError for %s, got %v", input.Email, err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
			}
		}
	})

	t.Run("inactive users cannot log in", func(t *testing.T) {
		f := newAuthFixture(t)
		f.createUser(t, "owner@scraptrade.local", "SecurePass123!", false)

		_, err := f.login.Execute(ctx, LoginUserInput{Email: "owner@scraptrade.local", Password: "SecurePass123!"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeUserInactive {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserInactive, authErr.Code)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the password after verifying the current one", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		err := f.changePassword.Execute(ctx, ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "SecurePass123!",
			NewPassword:     "EvenSaferPass456!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := f.login.Execute(ctx, LoginUserInput{Email: user.Email, Password: "EvenSaferPass456!"}); err != nil {
			t.Errorf("expected login with the new password to work, got %v", err)
		}
	})

	t.Run("rejects an incorrect current password", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		err := f.changePassword.Execute(ctx, ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "wrong-password",
			NewPassword:     "EvenSaferPass456!",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeIncorrectPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeIncorrectPassword, authErr.Code)
		}
	})

	t.Run("rejects a weak new password", func(t *testing.T) {
		f := newAuthFixture(t)
		user := f.createUser(t, "owner@scraptrade.local", "SecurePass123!", true)

		err := f.changePassword.Execute(ctx, ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "SecurePass123!",
			NewPassword:     "short",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, authErr.Code)
		}
	})

	t.Run("unknown user returns a coded error", func(t *testing.T) {
		f := newAuthFixture(t)

		err := f.changePassword.Execute(ctx, ChangePasswordInput{
			UserID:          uuid.New(),
			CurrentPassword: "SecurePass123!",
			NewPassword:     "EvenSaferPass456!",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, authErr.Code)
		}
	})
}
