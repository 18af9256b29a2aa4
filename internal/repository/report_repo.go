// Package repository holds the durable sinks for completed assessments.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"ailiteracy/internal/model"
)

// ReportRepo stores one row per completed session
type ReportRepo interface {
	SaveFinal(ctx context.Context, sess *model.Session) error
	GetReport(ctx context.Context, sessionID string) (*model.Report, error)
	Close() error
}

type sqliteReportRepo struct {
	db *sql.DB
}

// NewSQLiteReportRepo opens (or creates) the report database at path
func NewSQLiteReportRepo(path string) (ReportRepo, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open report database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping report database: %w", err)
	}

	repo := &sqliteReportRepo{db: db}
	if err := repo.initSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *sqliteReportRepo) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS assessment_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		persona TEXT,
		scores_json TEXT NOT NULL,
		evidence_json TEXT NOT NULL,
		report_json TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_reports_session ON assessment_reports(session_id);
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("create report schema: %w", err)
	}
	return nil
}

// SaveFinal writes the session's scores, evidence and report as one row
func (r *sqliteReportRepo) SaveFinal(ctx context.Context, sess *model.Session) error {
	scoresJSON, err := json.Marshal(sess.Scores)
	if err != nil {
		return err
	}
	evidenceJSON, err := json.Marshal(sess.Evidence)
	if err != nil {
		return err
	}
	var reportJSON []byte
	if sess.Report != nil {
		if reportJSON, err = json.Marshal(sess.Report); err != nil {
			return err
		}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessment_reports (session_id, created_at, persona, scores_json, evidence_json, report_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.CreatedAt.Unix(), string(sess.Persona),
		string(scoresJSON), string(evidenceJSON), string(reportJSON))
	if err != nil {
		return fmt.Errorf("insert assessment report: %w", err)
	}
	return nil
}

// GetReport returns the latest persisted report for a session, or nil
func (r *sqliteReportRepo) GetReport(ctx context.Context, sessionID string) (*model.Report, error) {
	var reportJSON sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT report_json FROM assessment_reports
		WHERE session_id = ? ORDER BY id DESC LIMIT 1`, sessionID).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !reportJSON.Valid || reportJSON.String == "" {
		return nil, nil
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON.String), &report); err != nil {
		return nil, fmt.Errorf("decode stored report: %w", err)
	}
	return &report, nil
}

func (r *sqliteReportRepo) Close() error {
	return r.db.Close()
}
