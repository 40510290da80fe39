package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameConflict = errors.New("game with this id already exists")
	ErrGameInUse    = errors.New("game cannot be deleted as it is referenced by sessions")
)

// GameUpdate - частичное обновление: nil означает "поле не передано".
type GameUpdate struct {
	Name    *string
	Scoring *string
}

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id string) (*models.Game, error)
	GetAll(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, id string, upd GameUpdate) (*models.Game, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type sqlGameRepository struct {
	db *sql.DB
}

func NewSQLGameRepository(db *sql.DB) GameRepository {
	return &sqlGameRepository{db: db}
}

func (r *sqlGameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.ID == "" {
		game.ID = newID()
	}

	query := `INSERT INTO game (id, name, scoring, seq) VALUES ($1, $2, $3, ` + nextSeqExpr("game") + `)`

	_, err := r.db.ExecContext(ctx, query, game.ID, game.Name, game.Scoring)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrGameConflict
		}
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (r *sqlGameRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	return getGameByID(ctx, r.db, id)
}

func getGameByID(ctx context.Context, exec SQLExecutor, id string) (*models.Game, error) {
	query := `SELECT id, name, scoring FROM game WHERE id = $1`

	var game models.Game
	err := exec.QueryRowContext(ctx, query, id).Scan(&game.ID, &game.Name, &game.Scoring)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *sqlGameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	return listGames(ctx, r.db)
}

func listGames(ctx context.Context, exec SQLExecutor) ([]models.Game, error) {
	query := `SELECT id, name, scoring FROM game ORDER BY seq, id`

	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if scanErr := rows.Scan(&game.ID, &game.Name, &game.Scoring); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}

func (r *sqlGameRepository) Update(ctx context.Context, id string, upd GameUpdate) (*models.Game, error) {
	var updated *models.Game

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `UPDATE game SET name = COALESCE($1, name), scoring = COALESCE($2, scoring) WHERE id = $3`

		result, err := tx.ExecContext(ctx, query, upd.Name, upd.Scoring, id)
		if err != nil {
			return err
		}
		if err := checkAffectedRows(result, ErrGameNotFound); err != nil {
			return err
		}

		updated, err = getGameByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *sqlGameRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		inUse, err := existsQuery(ctx, tx, `SELECT EXISTS (SELECT 1 FROM session WHERE game = $1)`, id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrGameInUse
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM game WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrGameInUse
			}
			return err
		}
		return checkAffectedRows(result, ErrGameNotFound)
	})
}

func (r *sqlGameRepository) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM game WHERE id = $1)`, id)
}
