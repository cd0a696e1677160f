package services

import (
	"context"
	"errors"
	"testing"

	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

func newAccountServiceUnderTest(t *testing.T) (AccountServiceInterface, repositories.UserRepositoryInterface) {
	t.Helper()
	repo := repositories.NewUserRepository(newTestDB(t))
	return NewAccountService(repo), repo
}

func signUpRequest() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username: "mira",
		Email:    "mira@example.com",
		FullName: "Mira Chen",
		Password: "correct-horse-battery",
	}
}

func TestSignUp_CreatesActiveUserWithHashedPassword(t *testing.T) {
	svc, repo := newAccountServiceUnderTest(t)

	user, err := svc.SignUp(context.Background(), signUpRequest())
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
	if user.IsSuperuser {
		t.Error("new user should not be a superuser")
	}
	if user.HashedPassword == "correct-horse-battery" {
		t.Error("password stored in plaintext")
	}

	stored, err := repo.FindByUsername(context.Background(), "mira")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("user not persisted")
	}
}

func TestSignUp_RejectsDuplicateEmailAndUsername(t *testing.T) {
	svc, _ := newAccountServiceUnderTest(t)

	if _, err := svc.SignUp(context.Background(), signUpRequest()); err != nil {
		t.Fatalf("first SignUp returned error: %v", err)
	}

	dup := signUpRequest()
	dup.Username = "other"
	if _, err := svc.SignUp(context.Background(), dup); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email: expected ErrEmailAlreadyExists, got %v", err)
	}

	dup = signUpRequest()
	dup.Email = "other@example.com"
	if _, err := svc.SignUp(context.Background(), dup); !errors.Is(err, utils.ErrUsernameTaken) {
		t.Errorf("duplicate username: expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_ReturnsTokenForValidCredentials(t *testing.T) {
	svc, _ := newAccountServiceUnderTest(t)

	if _, err := svc.SignUp(context.Background(), signUpRequest()); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Username: "mira",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("empty access token")
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID == 0 {
		t.Error("token claims missing user_id")
	}
	if claims.Superuser {
		t.Error("token claims superuser for regular user")
	}
}

func TestLogin_RejectsWrongPasswordAndUnknownUser(t *testing.T) {
	svc, _ := newAccountServiceUnderTest(t)

	if _, err := svc.SignUp(context.Background(), signUpRequest()); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Username: "mira", Password: "wrong"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_RejectsInactiveAccount(t *testing.T) {
	svc, repo := newAccountServiceUnderTest(t)

	user, err := svc.SignUp(context.Background(), signUpRequest())
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	user.IsActive = false
	if err := repo.Update(context.Background(), user); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Username: "mira",
		Password: "correct-horse-battery",
	})
	if !errors.Is(err, utils.ErrInactiveAccount) {
		t.Fatalf("expected ErrInactiveAccount, got %v", err)
	}
}
