package services

import (
	"context"
	"fmt"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewAccountService(userRepo repositories.UserRepositoryInterface) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	user := &db_models.User{
		Username:       request.Username,
		Email:          request.Email,
		FullName:       request.FullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return user, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.HashedPassword, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", utils.ErrInactiveAccount
	}

	token, err := utils.CreateToken(user.ID, user.IsSuperuser)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidCredentials, err)
	}
	return token, nil
}
