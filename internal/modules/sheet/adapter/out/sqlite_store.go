package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"healthlog/internal/modules/sheet/domain"
	sheetout "healthlog/internal/modules/sheet/port/out"
	"healthlog/internal/platform/clock"
	"healthlog/internal/platform/id"

	_ "modernc.org/sqlite"
)

type SQLiteRowStore struct {
	db    *sql.DB
	clock clock.Clock
	ids   id.Generator
}

func NewSQLiteRowStore(dbPath string, clk clock.Clock, ids id.Generator) (sheetout.RowStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteRowStore{db: db, clock: clk, ids: ids}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRowStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS rows (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  payload TEXT NOT NULL,
  appended_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create rows table: %w", err)
	}
	return nil
}

func (s *SQLiteRowStore) Append(ctx context.Context, row domain.Row) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rows (id, payload, appended_at) VALUES (?, ?, ?)`,
		s.ids.New(),
		string(payload),
		s.clock.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert row: %w", err)
	}
	return nil
}

func (s *SQLiteRowStore) List(ctx context.Context) ([]domain.Row, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM rows ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()
	out := []domain.Row{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row, err := domain.DecodeRow([]byte(payload))
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func (s *SQLiteRowStore) Close() error {
	return s.db.Close()
}
