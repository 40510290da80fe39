package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerConflict = errors.New("player with this id already exists")
	ErrPlayerInUse    = errors.New("player cannot be deleted as it has session results")
)

type PlayerUpdate struct {
	Name *string
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, id string, upd PlayerUpdate) (*models.Player, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type sqlPlayerRepository struct {
	db *sql.DB
}

func NewSQLPlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlPlayerRepository{db: db}
}

func (r *sqlPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = newID()
	}

	query := `INSERT INTO player (id, name, seq) VALUES ($1, $2, ` + nextSeqExpr("player") + `)`

	if _, err := r.db.ExecContext(ctx, query, player.ID, player.Name); err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	return getPlayerByID(ctx, r.db, id)
}

func getPlayerByID(ctx context.Context, exec SQLExecutor, id string) (*models.Player, error) {
	var player models.Player
	err := exec.QueryRowContext(ctx, `SELECT id, name FROM player WHERE id = $1`, id).Scan(&player.ID, &player.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *sqlPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	return listPlayers(ctx, r.db)
}

func listPlayers(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	rows, err := exec.QueryContext(ctx, `SELECT id, name FROM player ORDER BY seq, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(&player.ID, &player.Name); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *sqlPlayerRepository) Update(ctx context.Context, id string, upd PlayerUpdate) (*models.Player, error) {
	var updated *models.Player

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE player SET name = COALESCE($1, name) WHERE id = $2`, upd.Name, id)
		if err != nil {
			return err
		}
		if err := checkAffectedRows(result, ErrPlayerNotFound); err != nil {
			return err
		}

		updated, err = getPlayerByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *sqlPlayerRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		inUse, err := existsQuery(ctx, tx, `SELECT EXISTS (SELECT 1 FROM "session-players" WHERE player_id = $1)`, id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrPlayerInUse
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM player WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) { // ON DELETE RESTRICT по умолчанию
				return ErrPlayerInUse
			}
			return err
		}
		return checkAffectedRows(result, ErrPlayerNotFound)
	})
}

func (r *sqlPlayerRepository) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM player WHERE id = $1)`, id)
}
