package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLExecutor - общий интерфейс *sql.DB и *sql.Tx, чтобы запросы можно было
// выполнять как в транзакции, так и без неё.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ SQLExecutor = (*sql.DB)(nil)
	_ SQLExecutor = (*sql.Tx)(nil)
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError // Возвращаем переданную ошибку "не найдено"
	}
	return nil
}

// withTx выполняет fn в одной транзакции: commit при успехе, rollback при ошибке или панике.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(tx)
}

func newID() string {
	return uuid.NewString()
}

// nextSeqExpr возвращает подзапрос для колонки seq, задающей порядок вставки.
func nextSeqExpr(table string) string {
	return "(SELECT COALESCE(MAX(seq), 0) + 1 FROM " + table + ")"
}

func existsQuery(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (bool, error) {
	var exists bool
	if err := exec.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// isUniqueViolation распознаёт нарушение первичного ключа/уникальности в Postgres и SQLite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return sqliteConstraint(err, "UNIQUE", sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" // foreign_key_violation
	}
	return sqliteConstraint(err, "FOREIGN KEY", sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY)
}

// sqliteConstraint сверяет расширенный код ошибки SQLite, а если драйвер вернул
// только первичный SQLITE_CONSTRAINT - текст сообщения.
func sqliteConstraint(err error, kind string, codes ...int) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), kind+" constraint failed")
}
