package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Analysis is one row of the audit log written after each scoring run.
type Analysis struct {
	ID          int64  `json:"id"`
	Verdict     string `json:"verdict"`
	Score       int    `json:"score"`
	CompanyName string `json:"companyName"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
}

func LogAnalysis(ctx context.Context, db *sql.DB, a Analysis) error {
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO analyses (verdict, score, company_name, url, created_at)
VALUES (?, ?, ?, ?, ?);`,
		a.Verdict, a.Score, a.CompanyName, a.URL, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func RecentAnalyses(ctx context.Context, db *sql.DB, limit int) ([]Analysis, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, verdict, score, company_name, url, created_at
FROM analyses
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.Verdict, &a.Score, &a.CompanyName, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func CleanupOldAnalyses(db *sql.DB) (deleted int64, err error) {
	res, err := db.Exec(`
DELETE FROM analyses
WHERE created_at < datetime('now', '-3 months');
`)
	if err != nil {
		return 0, fmt.Errorf("cleanup old analyses: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
