package services

import (
	"context"
	"testing"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPlayersService_CreateValidates(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")

	full := SessionPlayersInput{SessionID: ptr("s1"), PlayerID: ptr("p1"), Score: ptr(4), Team: ptr(1), Winner: ptr(false)}

	missingWinner := full
	missingWinner.Winner = nil
	_, err := s.sessionPlayers.CreateSessionPlayers(ctx, missingWinner)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "winner")

	unknownSession := full
	unknownSession.SessionID = ptr("ghost")
	_, err = s.sessionPlayers.CreateSessionPlayers(ctx, unknownSession)
	assert.ErrorIs(t, err, ErrSessionReferenceInvalid)

	unknownPlayer := full
	unknownPlayer.PlayerID = ptr("ghost")
	_, err = s.sessionPlayers.CreateSessionPlayers(ctx, unknownPlayer)
	assert.ErrorIs(t, err, ErrPlayerReferenceInvalid)

	created, err := s.sessionPlayers.CreateSessionPlayers(ctx, full)
	require.NoError(t, err)
	assert.Equal(t, models.SessionPlayers{ID: created.ID, SessionID: "s1", PlayerID: "p1", Score: 4, Team: 1, Winner: false}, *created)
}

func TestSessionPlayersService_UpdatePartial(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")

	created, err := s.sessionPlayers.CreateSessionPlayers(ctx, SessionPlayersInput{
		ID: ptr("sp1"), SessionID: ptr("s1"), PlayerID: ptr("p1"), Score: ptr(4), Team: ptr(1), Winner: ptr(false),
	})
	require.NoError(t, err)

	updated, err := s.sessionPlayers.UpdateSessionPlayers(ctx, created.ID, UpdateSessionPlayersInput{Winner: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, models.SessionPlayers{ID: "sp1", SessionID: "s1", PlayerID: "p1", Score: 4, Team: 1, Winner: true}, *updated)

	_, err = s.sessionPlayers.UpdateSessionPlayers(ctx, "sp1", UpdateSessionPlayersInput{PlayerID: ptr("ghost")})
	assert.ErrorIs(t, err, ErrPlayerReferenceInvalid)

	_, err = s.sessionPlayers.UpdateSessionPlayers(ctx, "missing", UpdateSessionPlayersInput{Score: ptr(1)})
	assert.ErrorIs(t, err, ErrSessionPlayersNotFound)

	_, err = s.sessionPlayers.UpdateSessionPlayers(ctx, "missing", UpdateSessionPlayersInput{PlayerID: ptr("ghost"), SessionID: ptr("ghost")})
	assert.ErrorIs(t, err, ErrSessionPlayersNotFound, "missing target wins over unknown references")

	require.NoError(t, s.sessionPlayers.DeleteSessionPlayers(ctx, "sp1"))
	assert.ErrorIs(t, s.sessionPlayers.DeleteSessionPlayers(ctx, "sp1"), ErrSessionPlayersNotFound)
}

func TestSessionPlayersService_MergeOverwrites(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")
	s.mustPlayer(t, "p2")

	first, err := s.sessionPlayers.MergeSessionPlayers(ctx, SessionPlayersInput{
		SessionID: ptr("s1"), PlayerID: ptr("p1"), Score: ptr(10), Team: ptr(1), Winner: ptr(true),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := s.sessionPlayers.MergeSessionPlayers(ctx, SessionPlayersInput{
		ID: ptr(first.ID), SessionID: ptr("s1"), PlayerID: ptr("p2"), Score: ptr(3), Team: ptr(2), Winner: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := s.sessionPlayers.GetAllSessionPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *second, all[0])

	_, err = s.sessionPlayers.MergeSessionPlayers(ctx, SessionPlayersInput{SessionID: ptr("s1"), PlayerID: ptr("p1")})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestSessionPlayersService_MergeAllScenario(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	game, err := s.games.CreateGame(ctx, CreateGameInput{Name: ptr("Chess"), Scoring: ptr("win/loss")})
	require.NoError(t, err)
	session, err := s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr("2024-03-01"), GameID: ptr(game.ID)})
	require.NoError(t, err)
	s.mustPlayer(t, "A")
	s.mustPlayer(t, "B")

	batch := []SessionPlayersInput{
		{PlayerID: ptr("A"), Score: ptr(10), Team: ptr(0), Winner: ptr(true)},
		{PlayerID: ptr("B"), Score: ptr(5), Team: ptr(0), Winner: ptr(false)},
	}
	merged, err := s.sessionPlayers.MergeAllSessionPlayers(ctx, session.ID, batch)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0].PlayerID)
	assert.Equal(t, "B", merged[1].PlayerID)

	got, err := s.sessions.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 2)
	assert.Equal(t, 10, got.Players[0].Score)
	assert.True(t, got.Players[0].Winner)
	assert.Equal(t, 5, got.Players[1].Score)
	assert.False(t, got.Players[1].Winner)

	// Повтор с теми же id не создаёт дубликатов
	again := []SessionPlayersInput{
		{ID: ptr(merged[0].ID), PlayerID: ptr("A"), Score: ptr(11), Team: ptr(0), Winner: ptr(true)},
		{ID: ptr(merged[1].ID), PlayerID: ptr("B"), Score: ptr(5), Team: ptr(0), Winner: ptr(false)},
	}
	_, err = s.sessionPlayers.MergeAllSessionPlayers(ctx, session.ID, again)
	require.NoError(t, err)
	got, err = s.sessions.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 2)
	assert.Equal(t, 11, got.Players[0].Score)
}

func TestSessionPlayersService_MergeAllFailures(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")

	_, err := s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", nil)
	assert.ErrorIs(t, err, ErrSessionPlayersRequired)

	_, err = s.sessionPlayers.MergeAllSessionPlayers(ctx, "ghost", []SessionPlayersInput{})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", []SessionPlayersInput{
		{PlayerID: ptr("p1"), Score: ptr(1), Team: ptr(0), Winner: ptr(true)},
		{PlayerID: ptr("ghost"), Score: ptr(1), Team: ptr(0), Winner: ptr(false)},
	})
	assert.ErrorIs(t, err, ErrPlayerReferenceInvalid)

	entries, err := s.sessionPlayers.GetAllSessionPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed batch must not leave partial writes")

	merged, err := s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", []SessionPlayersInput{})
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestSessionPlayersService_RejectsReservedID(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")

	entry := SessionPlayersInput{ID: ptr("merge"), SessionID: ptr("s1"), PlayerID: ptr("p1"), Score: ptr(1), Team: ptr(0), Winner: ptr(true)}

	_, err := s.sessionPlayers.CreateSessionPlayers(ctx, entry)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.sessionPlayers.MergeSessionPlayers(ctx, entry)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", []SessionPlayersInput{entry})
	assert.ErrorIs(t, err, ErrValidationFailed)

	all, err := s.sessionPlayers.GetAllSessionPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
