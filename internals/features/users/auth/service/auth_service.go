package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/dto"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

var errBadCredentials = fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")

type AuthService struct {
	DB        *gorm.DB
	Log       *zap.Logger
	JWTSecret string
	TokenTTL  time.Duration
	Blacklist *helperAuth.Blacklist
	Now       func() time.Time
}

func NewAuthService(db *gorm.DB, log *zap.Logger, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		Log:       log,
		JWTSecret: secret,
		TokenTTL:  ttl,
		Blacklist: helperAuth.NewBlacklist(db, secret),
		Now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.Log.Info("login rejected", zap.String("user_id", user.ID.String()))
		return nil, errBadCredentials
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "account is deactivated")
	}

	tok, exp, err := helperAuth.IssueAccessToken(s.JWTSecret, s.TokenTTL, user.ID, user.FullName, user.Role, s.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: tok, ExpiresAt: exp, User: dto.FromUser(user)}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserInfo, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "user not found")
		}
		return nil, err
	}
	info := dto.FromUser(user)
	return &info, nil
}

// Logout revokes the presented token until its own expiry.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := helperAuth.ParseAccessToken(s.JWTSecret, rawToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	exp := s.Now().UTC().Add(s.TokenTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := s.Blacklist.Add(ctx, rawToken, exp); err != nil {
		return err
	}
	s.Log.Info("logout", zap.String("user_id", claims.Subject))
	return nil
}

// HashPassword is used by seeding and account creation.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
