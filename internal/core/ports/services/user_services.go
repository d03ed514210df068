package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// UserSvcFacade exposes operator account management.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AuthSvcFacade verifies credentials and issues tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}
