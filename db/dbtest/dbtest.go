// Package dbtest открывает изолированную базу SQLite в памяти для тестов.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dosada05/boardgame-tracker/db"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

func New(t testing.TB) *sql.DB {
	t.Helper()

	conn, err := db.Connect(db.DriverSQLite, memoryDSN, 5*time.Second)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(context.Background(), conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
