package service

import (
	"context"
	"errors"
	"time"

	validate "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ananev/todoauth/auth/dto"
	customErrors "github.com/ananev/todoauth/auth/errors"
	"github.com/ananev/todoauth/auth/jwt"
	"github.com/ananev/todoauth/auth/model"
	"github.com/ananev/todoauth/auth/password"
	"github.com/ananev/todoauth/repo"
)

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	jwtUtil   jwt.JWTUtil
	verifier  *password.Verifier
	v         *validate.Validate
	logger    *zap.Logger
}

func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := a.verifier.Hash(dto.Password)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	id, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.TokenPair{}, err
		}
		return model.TokenPair{}, customErrors.WrapInternal(err, "Register")
	}

	a.logger.Info("user registered", zap.String("user_id", id.String()))

	return a.issuePair(id)
}

func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByUsername(ctx, dto.Username)
	if errors.Is(err, customErrors.ErrNotFound) {
		// не раскрываем, что именно неверно — имя или пароль
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if !a.verifier.Verify(dto.Password, user.PasswordHash) {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	return a.issuePair(user.ID)
}

// Validate checks the access token alone: signature and expiry, no
// revocation or user lookup. That keeps the per-request hot path free
// of store round-trips.
func (a *authService) Validate(_ context.Context, dto dto.ValidateDTO) (uuid.UUID, error) {
	if err := a.v.Struct(dto); err != nil {
		return uuid.Nil, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.jwtUtil.ValidateAccessToken(dto.AccessToken)
	if err != nil {
		return uuid.Nil, customErrors.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, customErrors.ErrInvalidToken
	}

	return uid, nil
}

func (a *authService) Refresh(ctx context.Context, dto dto.RefreshDTO) (model.TokenPair, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.jwtUtil.ValidateRefreshToken(dto.RefreshToken)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	// Отзыв и проверка — один атомарный шаг: из двух одновременных
	// refresh с одним токеном выигрывает ровно один.
	alreadyRevoked, err := a.tokenRepo.RevokeOnce(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
	}
	if alreadyRevoked {
		a.logger.Warn("refresh token reuse", zap.String("jti", claims.ID))
		return model.TokenPair{}, customErrors.ErrTokenRevoked
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidToken
	}

	return a.issuePair(uid)
}

func (a *authService) Logout(ctx context.Context, dto dto.LogoutDTO) error {
	if err := a.v.Struct(dto); err != nil {
		return customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.jwtUtil.ValidateRefreshToken(dto.RefreshToken)
	if err != nil {
		return customErrors.ErrInvalidToken
	}

	// повторный logout того же токена — no-op
	_, err = a.tokenRepo.RevokeOnce(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	if err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}

	return nil
}

func (a *authService) issuePair(userID uuid.UUID) (model.TokenPair, error) {
	accessToken, atExp, err := a.jwtUtil.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issuePair")
	}

	refreshToken, rtExp, _, err := a.jwtUtil.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issuePair")
	}

	now := time.Now()

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		AccessTTL:    atExp.Sub(now),
		RefreshTTL:   rtExp.Sub(now),
		UserID:       userID,
	}, nil
}
