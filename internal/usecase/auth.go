package usecase

import (
	"context"
	"errors"

	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/pkg/jwt"
	"parking-allocator/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDeleted        = errors.New("user account is deleted")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

// TokenValidator is the slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error) {
	u, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || u == nil {
		return "", nil, ErrUserNotFound
	}
	if u.IsDeleted {
		return "", nil, ErrUserDeleted
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, u, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if u.IsDeleted {
		return nil, ErrUserDeleted
	}
	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
