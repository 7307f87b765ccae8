package repo_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"prepository/internal/model"
	appErr "prepository/internal/pkg/errors"
	"prepository/internal/pkg/timeutil"
	"prepository/internal/repo"
	"prepository/internal/testutil"
)

func newTestID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func newTestUser(t *testing.T, users *repo.UserRepo) *model.User {
	t.Helper()
	user := &model.User{
		ID:           newTestID(),
		Email:        newTestID() + "@example.com",
		PasswordHash: "x",
		Ctime:        timeutil.NowUnix(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserRepoCreateAndGet(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)

	user := newTestUser(t, users)

	got, err := users.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.Email, got.Email)

	got, err = users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)

	user := newTestUser(t, users)

	dup := &model.User{
		ID:           newTestID(),
		Email:        user.Email,
		PasswordHash: "y",
		Ctime:        timeutil.NowUnix(),
	}
	err := users.Create(context.Background(), dup)
	require.ErrorIs(t, err, appErr.ErrConflict)
}

func TestUserRepoGetMissing(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)

	_, err := users.GetByEmail(context.Background(), newTestID()+"@example.com")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}
