package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/boardgame-tracker/db/dbtest"
	"github.com/Dosada05/boardgame-tracker/repositories"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db             *sql.DB
	games          GameService
	players        PlayerService
	sessions       SessionService
	sessionPlayers SessionPlayersService
	export         ExportService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	conn := dbtest.New(t)

	gameRepo := repositories.NewSQLGameRepository(conn)
	playerRepo := repositories.NewSQLPlayerRepository(conn)
	sessionRepo := repositories.NewSQLSessionRepository(conn)
	sessionPlayersRepo := repositories.NewSQLSessionPlayersRepository(conn)

	return &testServices{
		db:             conn,
		games:          NewGameService(gameRepo),
		players:        NewPlayerService(playerRepo),
		sessions:       NewSessionService(sessionRepo, gameRepo),
		sessionPlayers: NewSessionPlayersService(sessionPlayersRepo, sessionRepo, playerRepo, nil),
		export:         NewExportService(repositories.NewSQLSnapshotRepository(conn), nil, nil),
	}
}

func ptr[T any](v T) *T { return &v }

func (s *testServices) mustGame(t *testing.T, id string) {
	t.Helper()
	_, err := s.games.CreateGame(context.Background(), CreateGameInput{ID: ptr(id), Name: ptr("Chess"), Scoring: ptr("win/loss")})
	require.NoError(t, err)
}

func (s *testServices) mustPlayer(t *testing.T, id string) {
	t.Helper()
	_, err := s.players.CreatePlayer(context.Background(), CreatePlayerInput{ID: ptr(id), Name: ptr("Player " + id)})
	require.NoError(t, err)
}

func (s *testServices) mustSession(t *testing.T, id, gameID string) {
	t.Helper()
	_, err := s.sessions.CreateSession(context.Background(), CreateSessionInput{ID: ptr(id), Date: ptr("2024-03-01"), GameID: ptr(gameID)})
	require.NoError(t, err)
}
