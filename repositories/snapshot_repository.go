package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/lib/pq"
)

type SnapshotRepository interface {
	// Load читает все четыре таблицы в одной транзакции, поэтому каждая запись
	// SessionPlayers в снимке ссылается на партию из того же снимка.
	Load(ctx context.Context) (*models.Snapshot, error)
}

type sqlSnapshotRepository struct {
	db *sql.DB
}

func NewSQLSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &sqlSnapshotRepository{db: db}
}

func (r *sqlSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		// В SQLite одна транзакция на единственном соединении уже видит согласованное состояние
		if _, isPostgres := r.db.Driver().(*pq.Driver); isPostgres {
			if _, err := tx.ExecContext(ctx, `SET TRANSACTION ISOLATION LEVEL REPEATABLE READ, READ ONLY`); err != nil {
				return fmt.Errorf("failed to set snapshot isolation: %w", err)
			}
		}

		var err error
		if snapshot.Games, err = listGames(ctx, tx); err != nil {
			return fmt.Errorf("failed to load games: %w", err)
		}
		if snapshot.Players, err = listPlayers(ctx, tx); err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}
		if snapshot.Sessions, err = listSessions(ctx, tx); err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		if snapshot.SessionPlayers, err = listAllSessionPlayers(ctx, tx); err != nil {
			return fmt.Errorf("failed to load session players: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attachSessionPlayers(snapshot.Sessions, snapshot.SessionPlayers)
	return snapshot, nil
}
