//go:build testutil
// +build testutil

package helper_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "schoolhub_backend/internals/helpers/auth"
	"schoolhub_backend/internals/testutil/testdb"
)

func TestBlacklist_AddCheckPurge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	bl := helperAuth.NewBlacklist(h.DB, "secret")

	revoked, err := bl.IsBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Add(ctx, "token-a", time.Now().Add(time.Hour)))
	require.NoError(t, bl.Add(ctx, "token-a", time.Now().Add(2*time.Hour)), "re-adding refreshes expiry")
	require.NoError(t, bl.Add(ctx, "token-old", time.Now().Add(-48*time.Hour)))

	revoked, err = bl.IsBlacklisted(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = bl.IsBlacklisted(ctx, "token-old")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entries no longer block")

	n, err := helperAuth.PurgeExpired(ctx, h.DB, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
