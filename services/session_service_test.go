package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateAndGet(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "chess")

	session, err := s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr("2024-03-01"), GameID: ptr("chess")})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)

	got, err := s.sessions.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.Date.String())
	assert.Equal(t, "chess", got.GameID)
	assert.NotNil(t, got.Players)
	assert.Empty(t, got.Players)

	_, err = s.sessions.GetSessionByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_CreateRejectsMalformedDates(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "chess")

	for _, date := range []string{"", "2024-03", "2024-03-01-01", "2024-xx-01", "2024-13-01", "2023-02-29", "01/03/2024", "+2024-+3-01", "1-1-1", "2024-3-1"} {
		_, err := s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr(date), GameID: ptr("chess")})
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}

	_, err := s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr("2024-02-29"), GameID: ptr("chess")})
	assert.NoError(t, err, "leap day is valid")

	sessions, err := s.sessions.GetAllSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionService_CreateValidatesInput(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.sessions.CreateSession(ctx, CreateSessionInput{GameID: ptr("chess")})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr("2024-03-01")})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.sessions.CreateSession(ctx, CreateSessionInput{Date: ptr("2024-03-01"), GameID: ptr("ghost")})
	assert.ErrorIs(t, err, ErrGameReferenceInvalid)
}

func TestSessionService_Update(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "chess")
	s.mustGame(t, "go")
	s.mustSession(t, "s1", "chess")

	updated, err := s.sessions.UpdateSession(ctx, "s1", UpdateSessionInput{Date: ptr("2025-01-15")})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", updated.Date.String())
	assert.Equal(t, "chess", updated.GameID)

	updated, err = s.sessions.UpdateSession(ctx, "s1", UpdateSessionInput{GameID: ptr("go")})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", updated.Date.String())
	assert.Equal(t, "go", updated.GameID)

	_, err = s.sessions.UpdateSession(ctx, "s1", UpdateSessionInput{Date: ptr("2025-02-30")})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.sessions.UpdateSession(ctx, "s1", UpdateSessionInput{GameID: ptr("ghost")})
	assert.ErrorIs(t, err, ErrGameReferenceInvalid)

	_, err = s.sessions.UpdateSession(ctx, "missing", UpdateSessionInput{Date: ptr("2025-01-15")})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.sessions.UpdateSession(ctx, "missing", UpdateSessionInput{GameID: ptr("ghost")})
	assert.ErrorIs(t, err, ErrSessionNotFound, "missing target wins over unknown game")

	_, err = s.sessions.UpdateSession(ctx, "missing", UpdateSessionInput{Date: ptr("2025-02-30")})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_DeleteRemovesPlayers(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "chess")
	s.mustSession(t, "s1", "chess")
	s.mustPlayer(t, "p1")

	_, err := s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", []SessionPlayersInput{
		{PlayerID: ptr("p1"), Score: ptr(1), Team: ptr(0), Winner: ptr(true)},
	})
	require.NoError(t, err)

	require.NoError(t, s.sessions.DeleteSession(ctx, "s1"))
	assert.ErrorIs(t, s.sessions.DeleteSession(ctx, "s1"), ErrSessionNotFound)

	entries, err := s.sessionPlayers.GetAllSessionPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Игрок без результатов снова удаляем
	assert.NoError(t, s.players.DeletePlayer(ctx, "p1"))
}
