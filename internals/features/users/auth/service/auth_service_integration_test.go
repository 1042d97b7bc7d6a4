//go:build testutil
// +build testutil

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub_backend/internals/features/users/auth/dto"
	authModel "schoolhub_backend/internals/features/users/auth/model"
	"schoolhub_backend/internals/testutil/testdb"
)

func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}

func TestLoginLogout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, h.DB.Model(&authModel.UserModel{}).
		Where("id = ?", fx.TeacherUser).
		Update("password_hash", hash).Error)

	svc := NewAuthService(h.DB, zap.NewNop(), "test-secret", time.Hour)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "teacher@fixture.test", Password: "wrong-horse"})
	assert.Equal(t, fiber.StatusUnauthorized, statusOf(err))

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "teacher@fixture.test", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, fx.TeacherUser, resp.User.ID)
	assert.Equal(t, "teacher", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)

	revoked, err := svc.Blacklist.IsBlacklisted(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	revoked, err = svc.Blacklist.IsBlacklisted(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, h.DB.Model(&authModel.UserModel{}).
		Where("id = ?", fx.TeacherUser).
		Update("is_active", false).Error)
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "teacher@fixture.test", Password: "correct-horse"})
	assert.Equal(t, fiber.StatusUnauthorized, statusOf(err))
}
