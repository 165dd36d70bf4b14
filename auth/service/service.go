package service

import (
	"context"

	validate "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ananev/todoauth/auth/dto"
	"github.com/ananev/todoauth/auth/jwt"
	"github.com/ananev/todoauth/auth/model"
	"github.com/ananev/todoauth/auth/password"
	"github.com/ananev/todoauth/repo"
)

// AuthService is the token lifecycle core: it issues access/refresh
// pairs, verifies access tokens and enforces one-time use of refresh
// tokens. It is stateless; durable state lives in repo.TokenRepo.
type AuthService interface {
	Register(ctx context.Context, dto dto.RegisterDTO) (model.TokenPair, error)
	Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error)
	Validate(ctx context.Context, dto dto.ValidateDTO) (uuid.UUID, error)
	Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error)
	Logout(ctx context.Context, dto dto.LogoutDTO) error
}

func NewAuthService(
	userRepo repo.UserRepo,
	tokenRepo repo.TokenRepo,
	jwtUtil jwt.JWTUtil,
	verifier *password.Verifier,
	v *validate.Validate,
	logger *zap.Logger,
) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtUtil:   jwtUtil,
		verifier:  verifier,
		v:         v,
		logger:    logger,
	}
}
