package store

import (
	"context"
	"os"
)

// Stats holds history database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	TotalRuns   int             `json:"total_runs"`
	FoundRuns   int             `json:"found_runs"`
	Strategies  []StrategyStats `json:"strategies"`
}

// StrategyStats holds per-strategy run counts.
type StrategyStats struct {
	Strategy string `json:"strategy"`
	Count    int    `json:"count"`
	Found    int    `json:"found"`
}

// Stats returns history database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.TotalRuns)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE found = 1`).Scan(&st.FoundRuns)

	rows, err := s.db.QueryContext(ctx, `
		SELECT strategy, COUNT(*) AS cnt, SUM(found) AS hits
		FROM runs
		GROUP BY strategy ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ss StrategyStats
		rows.Scan(&ss.Strategy, &ss.Count, &ss.Found)
		st.Strategies = append(st.Strategies, ss)
	}

	return st, nil
}
