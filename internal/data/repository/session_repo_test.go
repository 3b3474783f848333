package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionRepoWithMock(t *testing.T) (SessionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSessionRepository(mock, zap.NewNop()), mock
}

func TestSessionRepository_Find(t *testing.T) {
	repo, mock := newSessionRepoWithMock(t)

	mock.ExpectQuery(`SELECT data\s+FROM sessions`).
		WithArgs("tok").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow([]byte("blob")))

	data, found, err := repo.Find("tok")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("blob"), data)
}

func TestSessionRepository_Find_Expired(t *testing.T) {
	repo, mock := newSessionRepoWithMock(t)

	mock.ExpectQuery(`SELECT data\s+FROM sessions`).
		WithArgs("old").
		WillReturnRows(pgxmock.NewRows([]string{"data"}))

	data, found, err := repo.FindCtx(context.Background(), "old")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSessionRepository_CommitUpserts(t *testing.T) {
	repo, mock := newSessionRepoWithMock(t)
	expiry := time.Now().Add(time.Hour)

	mock.ExpectExec(`INSERT INTO sessions .+ ON CONFLICT \(token\) DO UPDATE`).
		WithArgs("tok", []byte("blob"), expiry).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Commit("tok", []byte("blob"), expiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := newSessionRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM sessions WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete("tok"))
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	repo, mock := newSessionRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM sessions WHERE expiry < NOW\(\)`).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	removed, err := repo.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
