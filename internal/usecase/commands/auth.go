package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/user"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/pkg/jwt"
	"ecommerce-api/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email    string
	FullName string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID      uuid.UUID
	Email       string
	FullName    string
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}

type authUseCaseImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{users: users, jwtService: jwtService}
}

func (uc *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(email, req.FullName, hash, user.RoleCustomer)
	if err := uc.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}
	return uc.issueToken(u)
}

func (uc *authUseCaseImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := uc.users.FindByEmail(ctx, email.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}
	if err := password.ComparePassword(u.PasswordHash(), req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	return uc.issueToken(u)
}

func (uc *authUseCaseImpl) issueToken(u *user.User) (*AuthResult, error) {
	token, err := uc.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		UserID:      u.ID(),
		Email:       u.Email().String(),
		FullName:    u.FullName(),
		Role:        u.Role().String(),
		AccessToken: token,
	}, nil
}
