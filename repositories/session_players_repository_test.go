package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/boardgame-tracker/db/dbtest"
	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSessionPlayers(t *testing.T, conn *sql.DB, sessionID string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM "session-players" WHERE session_id = $1`, sessionID).Scan(&n))
	return n
}

func TestSessionPlayersRepository_CRUD(t *testing.T) {
	conn := dbtest.New(t)
	ctx := context.Background()
	seedSession(t, conn, "s1", "p1", "p2")

	repo := NewSQLSessionPlayersRepository(conn)

	sp := &models.SessionPlayers{SessionID: "s1", PlayerID: "p1", Score: 7, Team: 1, Winner: true}
	require.NoError(t, repo.Create(ctx, sp))
	require.NotEmpty(t, sp.ID)

	got, err := repo.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, *sp, *got)

	assert.ErrorIs(t, repo.Create(ctx, &models.SessionPlayers{ID: sp.ID, SessionID: "s1", PlayerID: "p2"}), ErrSessionPlayersConflict)
	assert.ErrorIs(t, repo.Create(ctx, &models.SessionPlayers{SessionID: "s1", PlayerID: "ghost"}), ErrSessionPlayersReferenceInvalid)

	score := 0
	winner := false
	updated, err := repo.Update(ctx, sp.ID, SessionPlayersUpdate{Score: &score, Winner: &winner})
	require.NoError(t, err)
	assert.Equal(t, models.SessionPlayers{ID: sp.ID, SessionID: "s1", PlayerID: "p1", Score: 0, Team: 1, Winner: false}, *updated)

	_, err = repo.Update(ctx, "missing", SessionPlayersUpdate{Score: &score})
	assert.ErrorIs(t, err, ErrSessionPlayersNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, sp.ID))
	assert.ErrorIs(t, repo.Delete(ctx, sp.ID), ErrSessionPlayersNotFound)
	_, err = repo.GetByID(ctx, sp.ID)
	assert.ErrorIs(t, err, ErrSessionPlayersNotFound)
}

func TestSessionPlayersRepository_MergeOverwritesAllFields(t *testing.T) {
	conn := dbtest.New(t)
	ctx := context.Background()
	seedSession(t, conn, "s1", "p1", "p2")

	repo := NewSQLSessionPlayersRepository(conn)

	require.NoError(t, repo.Merge(ctx, &models.SessionPlayers{ID: "sp", SessionID: "s1", PlayerID: "p1", Score: 10, Team: 1, Winner: true}))
	require.NoError(t, repo.Merge(ctx, &models.SessionPlayers{ID: "sp", SessionID: "s1", PlayerID: "p2", Score: 0, Team: 2, Winner: false}))

	got, err := repo.GetByID(ctx, "sp")
	require.NoError(t, err)
	assert.Equal(t, models.SessionPlayers{ID: "sp", SessionID: "s1", PlayerID: "p2", Score: 0, Team: 2, Winner: false}, *got)
	assert.Equal(t, 1, countSessionPlayers(t, conn, "s1"))

	generated := &models.SessionPlayers{SessionID: "s1", PlayerID: "p1"}
	require.NoError(t, repo.Merge(ctx, generated))
	assert.NotEmpty(t, generated.ID)
	assert.Equal(t, 2, countSessionPlayers(t, conn, "s1"))
}

func TestSessionPlayersRepository_MergeAll(t *testing.T) {
	conn := dbtest.New(t)
	ctx := context.Background()
	seedSession(t, conn, "s1", "pa", "pb", "pc")

	repo := NewSQLSessionPlayersRepository(conn)
	require.NoError(t, repo.Create(ctx, &models.SessionPlayers{ID: "existing", SessionID: "s1", PlayerID: "pc", Score: 1}))

	batch := []models.SessionPlayers{
		{ID: "a", PlayerID: "pa", Score: 10, Team: 1, Winner: true},
		{ID: "existing", PlayerID: "pc", Score: 2, Team: 2},
		{ID: "b", SessionID: "ignored", PlayerID: "pb", Score: 5, Team: 2},
	}

	merged, err := repo.MergeAll(ctx, "s1", batch)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	for i, m := range merged {
		assert.Equal(t, batch[i].ID, m.ID, "order must follow input")
		assert.Equal(t, "s1", m.SessionID)
	}
	// Новые только "a" и "b"
	assert.Equal(t, 3, countSessionPlayers(t, conn, "s1"))

	// Повторный прогон не создаёт дубликатов
	again, err := repo.MergeAll(ctx, "s1", batch)
	require.NoError(t, err)
	assert.Equal(t, merged, again)
	assert.Equal(t, 3, countSessionPlayers(t, conn, "s1"))

	got, err := repo.GetByID(ctx, "existing")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Score)

	players, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, []string{"existing", "a", "b"}, []string{players[0].ID, players[1].ID, players[2].ID})
}

func TestSessionPlayersRepository_MergeAllIsAtomic(t *testing.T) {
	conn := dbtest.New(t)
	ctx := context.Background()
	seedSession(t, conn, "s1", "pa")

	repo := NewSQLSessionPlayersRepository(conn)

	_, err := repo.MergeAll(ctx, "s1", []models.SessionPlayers{
		{ID: "a", PlayerID: "pa", Score: 10},
		{ID: "b", PlayerID: "ghost", Score: 5},
	})
	require.ErrorIs(t, err, ErrSessionPlayersReferenceInvalid)
	assert.Equal(t, 0, countSessionPlayers(t, conn, "s1"))
}

func TestSessionPlayersRepository_MergeAllNilAndEmpty(t *testing.T) {
	repo := NewSQLSessionPlayersRepository(dbtest.New(t))
	ctx := context.Background()

	_, err := repo.MergeAll(ctx, "s1", nil)
	assert.ErrorIs(t, err, ErrSessionPlayersBatchNil)

	merged, err := repo.MergeAll(ctx, "s1", []models.SessionPlayers{})
	require.NoError(t, err)
	assert.Empty(t, merged)
}
