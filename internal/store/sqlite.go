package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/robocook/foon/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		strategy    TEXT NOT NULL,
		object      TEXT NOT NULL,
		state       TEXT NOT NULL,
		found       INTEGER NOT NULL,
		unit        TEXT,
		elapsed_ms  REAL NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_goal ON runs(object, state);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record persists one search run.
func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Run, error) {
	if !model.ValidStrategies[p.Strategy] {
		return nil, fmt.Errorf("invalid strategy: %q", p.Strategy)
	}

	now := time.Now().UTC()
	id := s.newID()

	var unitJSON *string
	if p.Unit != nil {
		b, err := json.Marshal(p.Unit)
		if err != nil {
			return nil, fmt.Errorf("marshal unit: %w", err)
		}
		str := string(b)
		unitJSON = &str
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, strategy, object, state, found, unit, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Strategy, p.Object, p.State, boolToInt(p.Found), unitJSON,
		p.Elapsed, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return &model.Run{
		ID:        id,
		Strategy:  p.Strategy,
		Object:    p.Object,
		State:     p.State,
		Found:     p.Found,
		Unit:      p.Unit,
		ElapsedMS: p.Elapsed,
		CreatedAt: now,
	}, nil
}

// List returns recorded runs, newest first.
func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Run, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1=1"}
	args := []interface{}{}

	if p.Strategy != "" {
		where = append(where, "strategy = ?")
		args = append(args, p.Strategy)
	}
	if p.Object != "" {
		where = append(where, "object = ?")
		args = append(args, p.Object)
	}

	query := fmt.Sprintf(`
		SELECT id, strategy, object, state, found, unit, elapsed_ms, created_at
		FROM runs WHERE %s
		ORDER BY created_at DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanRun(rows *sql.Rows) (model.Run, error) {
	var r model.Run
	var found int
	var unitJSON sql.NullString
	var createdAt string

	if err := rows.Scan(&r.ID, &r.Strategy, &r.Object, &r.State, &found,
		&unitJSON, &r.ElapsedMS, &createdAt); err != nil {
		return r, fmt.Errorf("scan run: %w", err)
	}

	r.Found = found != 0
	if unitJSON.Valid && unitJSON.String != "" {
		var u model.FunctionalUnit
		if err := json.Unmarshal([]byte(unitJSON.String), &u); err != nil {
			return r, fmt.Errorf("unmarshal unit: %w", err)
		}
		r.Unit = &u
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		r.CreatedAt = t
	}

	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
