//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/testutil/testdb"
)

func TestProfile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)
	svc := NewStudentService(h.DB, access.NewGormEdges(h.DB))

	got, err := svc.Profile(ctx, access.Requester{UserID: fx.FamilyUser, Role: constants.RoleFamily}, fx.Enrolled)
	require.NoError(t, err)
	assert.Equal(t, "STU-1", got.EnrollmentNumber)
	assert.True(t, got.HasAccount)
	require.Len(t, got.ClassGroups, 1)
	assert.Equal(t, fx.ClassGroup, got.ClassGroups[0].ID)

	got, err = svc.Profile(ctx, access.Requester{UserID: fx.TeacherUser, Role: constants.RoleTeacher}, fx.Unlinked)
	require.NoError(t, err)
	assert.False(t, got.HasAccount)

	_, err = svc.Profile(ctx, access.Requester{UserID: fx.OtherTeacherUser, Role: constants.RoleTeacher}, fx.Enrolled)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = svc.Profile(ctx, access.Requester{UserID: fx.AdminUser, Role: constants.RoleAdmin}, fx.Family)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
