// Package store persists scored questionnaire submissions in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/scoring"
)

// ErrNotFound is returned when no submission matches a lookup.
var ErrNotFound = errors.New("submission not found")

// timeLayout sorts lexically in time order (fixed-width fraction).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT NOT NULL UNIQUE,
	patient      TEXT NOT NULL,
	type         TEXT NOT NULL,
	author       TEXT,
	answers_json TEXT NOT NULL,
	scores_json  TEXT NOT NULL,
	saved_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_patient_type
	ON submissions (patient, type, saved_at);
`

// Submission is one stored scoring: the raw answers, the score record and
// the time it was saved.
type Submission struct {
	ID      string                `json:"id"`
	Patient string                `json:"patient"`
	Type    questionnaire.Type    `json:"type"`
	Author  string                `json:"author,omitempty"`
	Answers questionnaire.Answers `json:"answers"`
	Scores  scoring.Record        `json:"scores"`
	SavedAt time.Time             `json:"savedAt"`
}

// Store manages submissions in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// SetClock replaces the clock used to stamp saved submissions.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores sub with a fresh id and the current time, and returns the
// stored copy. Patient and type are required.
func (s *Store) Save(ctx context.Context, sub Submission) (Submission, error) {
	if sub.Patient == "" {
		return Submission{}, fmt.Errorf("save submission: patient is required")
	}
	if !sub.Type.Valid() {
		return Submission{}, fmt.Errorf("save submission: %w", questionnaire.ErrUnknownAssessmentType)
	}

	sub.ID = uuid.New().String()
	sub.SavedAt = s.now().UTC()
	if sub.Answers == nil {
		sub.Answers = questionnaire.Answers{}
	}

	answersJSON, err := json.Marshal(sub.Answers)
	if err != nil {
		return Submission{}, fmt.Errorf("marshal answers: %w", err)
	}
	scoresJSON, err := json.Marshal(sub.Scores)
	if err != nil {
		return Submission{}, fmt.Errorf("marshal scores: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, patient, type, author, answers_json, scores_json, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Patient, sub.Type.String(), nullIfEmpty(sub.Author),
		string(answersJSON), string(scoresJSON), sub.SavedAt.Format(timeLayout),
	)
	if err != nil {
		return Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

const selectColumns = `SELECT id, patient, type, author, answers_json, scores_json, saved_at FROM submissions`

// Get returns the submission with id.
func (s *Store) Get(ctx context.Context, id string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return sub, err
}

// List returns every submission of a patient, newest first.
func (s *Store) List(ctx context.Context, patient string) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE patient = ? ORDER BY saved_at DESC, seq DESC`, patient)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return collect(rows)
}

// Recent returns up to n submissions of one type for a patient, newest first.
func (s *Store) Recent(ctx context.Context, patient string, t questionnaire.Type, n int) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE patient = ? AND type = ? ORDER BY saved_at DESC, seq DESC LIMIT ?`,
		patient, t.String(), n)
	if err != nil {
		return nil, fmt.Errorf("recent submissions: %w", err)
	}
	return collect(rows)
}

// Latest returns the newest submission of one type for a patient.
func (s *Store) Latest(ctx context.Context, patient string, t questionnaire.Type) (Submission, error) {
	subs, err := s.Recent(ctx, patient, t, 1)
	if err != nil {
		return Submission{}, err
	}
	if len(subs) == 0 {
		return Submission{}, fmt.Errorf("latest %s for %s: %w", t, patient, ErrNotFound)
	}
	return subs[0], nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(sc scanner) (Submission, error) {
	var (
		sub                   Submission
		typ                   string
		author                sql.NullString
		answersJSON, scoresJS string
		savedAt               string
	)
	if err := sc.Scan(&sub.ID, &sub.Patient, &typ, &author, &answersJSON, &scoresJS, &savedAt); err != nil {
		return Submission{}, err
	}
	var err error
	if sub.Type, err = questionnaire.ParseType(typ); err != nil {
		return Submission{}, fmt.Errorf("submission %s: %w", sub.ID, err)
	}
	sub.Author = author.String
	if err := json.Unmarshal([]byte(answersJSON), &sub.Answers); err != nil {
		return Submission{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal([]byte(scoresJS), &sub.Scores); err != nil {
		return Submission{}, fmt.Errorf("unmarshal scores: %w", err)
	}
	if sub.SavedAt, err = time.Parse(timeLayout, savedAt); err != nil {
		return Submission{}, fmt.Errorf("parse saved_at: %w", err)
	}
	return sub, nil
}

func collect(rows *sql.Rows) ([]Submission, error) {
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
