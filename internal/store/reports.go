package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"internguard-engine/internal/reputation"
)

// maxReports caps retention; the oldest rows are dropped past this.
const maxReports = 200

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS reports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company_name TEXT NOT NULL DEFAULT '',
  domain TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  upi_id TEXT NOT NULL DEFAULT '',
  flags TEXT NOT NULL DEFAULT '[]',
  proof_uploaded INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  date TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS analyses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  verdict TEXT NOT NULL,
  score INTEGER NOT NULL,
  company_name TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	// ---- Schema v1: indexes ----

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_reports_date
ON reports(date);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_analyses_created_at
ON analyses(created_at);
`); err != nil {
		return err
	}

	// Mark schema v1
	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// ReportStore is the sqlite-backed implementation of
// reputation.ReportStore.
type ReportStore struct {
	db *sql.DB
}

func NewReportStore(db *DB) *ReportStore {
	return &ReportStore{db: db.Pool}
}

// Load returns all persisted reports, newest first.
func (s *ReportStore) Load() ([]reputation.UserReport, error) {
	rows, err := s.db.Query(`
SELECT company_name, domain, email, phone, upi_id, flags, proof_uploaded, description, date
FROM reports
ORDER BY id DESC;
`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []reputation.UserReport
	for rows.Next() {
		var ur reputation.UserReport
		var flagsJSON string
		var proof int
		if err := rows.Scan(
			&ur.CompanyName,
			&ur.Domain,
			&ur.Email,
			&ur.Phone,
			&ur.UPIID,
			&flagsJSON,
			&proof,
			&ur.Description,
			&ur.Date,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		ur.ProofUploaded = proof != 0
		ur.Flags = []string{}
		_ = json.Unmarshal([]byte(flagsJSON), &ur.Flags)
		out = append(out, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Append persists one report and trims the table past the retention cap.
func (s *ReportStore) Append(ur reputation.UserReport) error {
	flagsB, _ := json.Marshal(ur.Flags)
	proof := 0
	if ur.ProofUploaded {
		proof = 1
	}
	_, err := s.db.Exec(`
INSERT INTO reports (company_name, domain, email, phone, upi_id, flags, proof_uploaded, description, date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		ur.CompanyName, ur.Domain, ur.Email, ur.Phone, ur.UPIID, string(flagsB), proof, ur.Description, ur.Date,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	_, err = s.db.Exec(`
DELETE FROM reports
WHERE id NOT IN (SELECT id FROM reports ORDER BY id DESC LIMIT ?);`, maxReports)
	if err != nil {
		return fmt.Errorf("trim reports: %w", err)
	}
	return nil
}
