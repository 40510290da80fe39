package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
)

var (
	ErrSessionPlayersNotFound         = errors.New("session players entry not found")
	ErrSessionPlayersConflict         = errors.New("session players entry with this id already exists")
	ErrSessionPlayersReferenceInvalid = errors.New("session players entry references an unknown session or player")
	ErrSessionPlayersBatchNil         = errors.New("session players batch is required")
)

type SessionPlayersUpdate struct {
	SessionID *string
	PlayerID  *string
	Score     *int
	Team      *int
	Winner    *bool
}

type SessionPlayersRepository interface {
	Create(ctx context.Context, sp *models.SessionPlayers) error
	GetByID(ctx context.Context, id string) (*models.SessionPlayers, error)
	GetAll(ctx context.Context) ([]models.SessionPlayers, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.SessionPlayers, error)
	Update(ctx context.Context, id string, upd SessionPlayersUpdate) (*models.SessionPlayers, error)
	Delete(ctx context.Context, id string) error
	// Merge вставляет запись или полностью перезаписывает существующую с тем же id.
	Merge(ctx context.Context, sp *models.SessionPlayers) error
	// MergeAll применяет Merge ко всем записям в одной транзакции (всё или ничего).
	MergeAll(ctx context.Context, sessionID string, entries []models.SessionPlayers) ([]models.SessionPlayers, error)
}

type sqlSessionPlayersRepository struct {
	db *sql.DB
}

func NewSQLSessionPlayersRepository(db *sql.DB) SessionPlayersRepository {
	return &sqlSessionPlayersRepository{db: db}
}

const sessionPlayersColumns = `id, session_id, player_id, score, team, winner`

func (r *sqlSessionPlayersRepository) Create(ctx context.Context, sp *models.SessionPlayers) error {
	if sp.ID == "" {
		sp.ID = newID()
	}

	query := `INSERT INTO "session-players" (` + sessionPlayersColumns + `, seq)
		VALUES ($1, $2, $3, $4, $5, $6, ` + nextSeqExpr(`"session-players"`) + `)`

	_, err := r.db.ExecContext(ctx, query, sp.ID, sp.SessionID, sp.PlayerID, sp.Score, sp.Team, sp.Winner)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrSessionPlayersConflict
		case isForeignKeyViolation(err):
			return ErrSessionPlayersReferenceInvalid
		}
		return fmt.Errorf("failed to insert session players entry: %w", err)
	}
	return nil
}

func (r *sqlSessionPlayersRepository) GetByID(ctx context.Context, id string) (*models.SessionPlayers, error) {
	return getSessionPlayersByID(ctx, r.db, id)
}

func getSessionPlayersByID(ctx context.Context, exec SQLExecutor, id string) (*models.SessionPlayers, error) {
	query := `SELECT ` + sessionPlayersColumns + ` FROM "session-players" WHERE id = $1`

	sp, err := scanSessionPlayers(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionPlayersNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *sqlSessionPlayersRepository) GetAll(ctx context.Context) ([]models.SessionPlayers, error) {
	return listAllSessionPlayers(ctx, r.db)
}

func listAllSessionPlayers(ctx context.Context, exec SQLExecutor) ([]models.SessionPlayers, error) {
	query := `SELECT ` + sessionPlayersColumns + ` FROM "session-players" ORDER BY seq, id`
	return querySessionPlayers(ctx, exec, query)
}

func (r *sqlSessionPlayersRepository) ListBySession(ctx context.Context, sessionID string) ([]models.SessionPlayers, error) {
	return listSessionPlayersBySession(ctx, r.db, sessionID)
}

func listSessionPlayersBySession(ctx context.Context, exec SQLExecutor, sessionID string) ([]models.SessionPlayers, error) {
	query := `SELECT ` + sessionPlayersColumns + ` FROM "session-players" WHERE session_id = $1 ORDER BY seq, id`
	return querySessionPlayers(ctx, exec, query, sessionID)
}

func querySessionPlayers(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.SessionPlayers, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.SessionPlayers, 0)
	for rows.Next() {
		sp, scanErr := scanSessionPlayers(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, *sp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func scanSessionPlayers(rowScanner interface{ Scan(...interface{}) error }) (*models.SessionPlayers, error) {
	var sp models.SessionPlayers
	err := rowScanner.Scan(&sp.ID, &sp.SessionID, &sp.PlayerID, &sp.Score, &sp.Team, &sp.Winner)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *sqlSessionPlayersRepository) Update(ctx context.Context, id string, upd SessionPlayersUpdate) (*models.SessionPlayers, error) {
	var updated *models.SessionPlayers

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE "session-players" SET
				session_id = COALESCE($1, session_id),
				player_id  = COALESCE($2, player_id),
				score      = COALESCE($3, score),
				team       = COALESCE($4, team),
				winner     = COALESCE($5, winner)
			WHERE id = $6`

		result, err := tx.ExecContext(ctx, query, upd.SessionID, upd.PlayerID, upd.Score, upd.Team, upd.Winner, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrSessionPlayersReferenceInvalid
			}
			return err
		}
		if err := checkAffectedRows(result, ErrSessionPlayersNotFound); err != nil {
			return err
		}

		updated, err = getSessionPlayersByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *sqlSessionPlayersRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "session-players" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSessionPlayersNotFound)
}

func (r *sqlSessionPlayersRepository) Merge(ctx context.Context, sp *models.SessionPlayers) error {
	return mergeSessionPlayers(ctx, r.db, sp)
}

// mergeSessionPlayers - одна операция INSERT ... ON CONFLICT, без чтения перед записью.
// seq не обновляется, поэтому перезаписанная запись сохраняет своё место в сессии.
func mergeSessionPlayers(ctx context.Context, exec SQLExecutor, sp *models.SessionPlayers) error {
	if sp.ID == "" {
		sp.ID = newID()
	}

	query := `
		INSERT INTO "session-players" (` + sessionPlayersColumns + `, seq)
		VALUES ($1, $2, $3, $4, $5, $6, ` + nextSeqExpr(`"session-players"`) + `)
		ON CONFLICT (id) DO UPDATE SET
			session_id = excluded.session_id,
			player_id  = excluded.player_id,
			score      = excluded.score,
			team       = excluded.team,
			winner     = excluded.winner`

	_, err := exec.ExecContext(ctx, query, sp.ID, sp.SessionID, sp.PlayerID, sp.Score, sp.Team, sp.Winner)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrSessionPlayersReferenceInvalid
		}
		return fmt.Errorf("failed to merge session players entry %s: %w", sp.ID, err)
	}
	return nil
}

func (r *sqlSessionPlayersRepository) MergeAll(ctx context.Context, sessionID string, entries []models.SessionPlayers) ([]models.SessionPlayers, error) {
	if entries == nil {
		return nil, ErrSessionPlayersBatchNil
	}

	merged := make([]models.SessionPlayers, 0, len(entries))
	if len(entries) == 0 {
		return merged, nil
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for i, entry := range entries {
			sp := models.SessionPlayers{
				ID:        entry.ID,
				SessionID: sessionID,
				PlayerID:  entry.PlayerID,
				Score:     entry.Score,
				Team:      entry.Team,
				Winner:    entry.Winner,
			}
			if err := mergeSessionPlayers(ctx, tx, &sp); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			merged = append(merged, sp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}
