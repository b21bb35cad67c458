// Package store persists saved summaries in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"pdfsummarizer/types"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// ErrNotFound is returned when no summary has the requested id
var ErrNotFound = errors.New("summary not found")

// Record is a saved summary
type Record struct {
	ID             int64
	Title          string
	Content        string
	ReadingTime    int
	Language       string
	Topics         []types.Topic
	Keywords       []types.Keyword
	QualityMetrics types.QualityMetrics
}

// Listing is the projection used for the summaries list
type Listing struct {
	ID          int64
	Title       string
	ReadingTime int
}

// Store is a SQLite-backed summary store
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serializes writes and keeps :memory: databases alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a record and returns its new id
func (s *Store) Create(ctx context.Context, r Record) (int64, error) {
	topics, err := marshalColumn(r.Topics, "[]")
	if err != nil {
		return 0, fmt.Errorf("failed to encode topics: %w", err)
	}
	keywords, err := marshalColumn(r.Keywords, "[]")
	if err != nil {
		return 0, fmt.Errorf("failed to encode keywords: %w", err)
	}
	metrics, err := marshalColumn(r.QualityMetrics, "{}")
	if err != nil {
		return 0, fmt.Errorf("failed to encode quality metrics: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (title, content, reading_time, language, topics, keywords, quality_metrics)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Title, r.Content, r.ReadingTime, r.Language, topics, keywords, metrics,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert summary: %w", err)
	}
	return res.LastInsertId()
}

// List returns every saved summary in insertion order
func (s *Store) List(ctx context.Context) ([]Listing, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, COALESCE(reading_time, 0) FROM summaries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ID, &l.Title, &l.ReadingTime); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Get returns the full record for id
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	var (
		r                         Record
		topics, keywords, metrics sql.NullString
		language                  sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, COALESCE(reading_time, 0), language, topics, keywords, quality_metrics
		 FROM summaries WHERE id = ?`, id,
	).Scan(&r.ID, &r.Title, &r.Content, &r.ReadingTime, &language, &topics, &keywords, &metrics)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary %d: %w", id, err)
	}

	r.Language = language.String
	r.Topics = []types.Topic{}
	r.Keywords = []types.Keyword{}
	r.QualityMetrics = types.QualityMetrics{}
	if err := unmarshalColumn(topics, &r.Topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	if err := unmarshalColumn(keywords, &r.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if err := unmarshalColumn(metrics, &r.QualityMetrics); err != nil {
		return nil, fmt.Errorf("failed to decode quality metrics: %w", err)
	}
	return &r, nil
}

// Delete removes the record for id
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete summary %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete summary %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalColumn(v any, empty string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return empty, nil
	}
	return string(b), nil
}

func unmarshalColumn(col sql.NullString, dst any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}
