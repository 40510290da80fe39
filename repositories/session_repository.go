package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionConflict    = errors.New("session with this id already exists")
	ErrSessionGameInvalid = errors.New("session references an unknown game")
)

type SessionUpdate struct {
	Date   *models.Date
	GameID *string
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	GetAll(ctx context.Context) ([]models.Session, error)
	Update(ctx context.Context, id string, upd SessionUpdate) (*models.Session, error)
	// Delete удаляет партию вместе с её записями SessionPlayers.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type sqlSessionRepository struct {
	db *sql.DB
}

func NewSQLSessionRepository(db *sql.DB) SessionRepository {
	return &sqlSessionRepository{db: db}
}

func (r *sqlSessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = newID()
	}

	query := `INSERT INTO session (id, date, game, seq) VALUES ($1, $2, $3, ` + nextSeqExpr("session") + `)`

	_, err := r.db.ExecContext(ctx, query, session.ID, session.Date, session.GameID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrSessionConflict
		case isForeignKeyViolation(err):
			return ErrSessionGameInvalid
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if session.Players == nil {
		session.Players = []models.SessionPlayers{}
	}
	return nil
}

func (r *sqlSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return getSessionByID(ctx, r.db, id)
}

func getSessionByID(ctx context.Context, exec SQLExecutor, id string) (*models.Session, error) {
	var session models.Session
	err := exec.QueryRowContext(ctx, `SELECT id, date, game FROM session WHERE id = $1`, id).
		Scan(&session.ID, &session.Date, &session.GameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.Players, err = listSessionPlayersBySession(ctx, exec, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load players of session %s: %w", id, err)
	}
	return &session, nil
}

func (r *sqlSessionRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	sessions, err := listSessions(ctx, r.db)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	all, err := listAllSessionPlayers(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to load session players: %w", err)
	}
	attachSessionPlayers(sessions, all)
	return sessions, nil
}

// listSessions читает партии без участников, Players у каждой - пустой срез.
func listSessions(ctx context.Context, exec SQLExecutor) ([]models.Session, error) {
	rows, err := exec.QueryContext(ctx, `SELECT id, date, game FROM session ORDER BY seq, id`)
	if err != nil {
		return nil, err
	}
	// Закрываем до следующего запроса: у SQLite в пуле одно соединение
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if scanErr := rows.Scan(&session.ID, &session.Date, &session.GameID); scanErr != nil {
			return nil, scanErr
		}
		session.Players = []models.SessionPlayers{}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// attachSessionPlayers раскладывает записи по партиям, сохраняя порядок вставки.
func attachSessionPlayers(sessions []models.Session, entries []models.SessionPlayers) {
	index := make(map[string]int, len(sessions))
	for i, s := range sessions {
		index[s.ID] = i
	}
	for _, sp := range entries {
		if i, ok := index[sp.SessionID]; ok {
			sessions[i].Players = append(sessions[i].Players, sp)
		}
	}
}

func (r *sqlSessionRepository) Update(ctx context.Context, id string, upd SessionUpdate) (*models.Session, error) {
	var updated *models.Session

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE session SET date = COALESCE($1, date), game = COALESCE($2, game) WHERE id = $3`

		result, err := tx.ExecContext(ctx, query, upd.Date, upd.GameID, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrSessionGameInvalid
			}
			return err
		}
		if err := checkAffectedRows(result, ErrSessionNotFound); err != nil {
			return err
		}

		updated, err = getSessionByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *sqlSessionRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM "session-players" WHERE session_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete players of session %s: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM session WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return checkAffectedRows(result, ErrSessionNotFound)
	})
}

func (r *sqlSessionRepository) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM session WHERE id = $1)`, id)
}
