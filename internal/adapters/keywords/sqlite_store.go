package keywords

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the KeywordRepository interface
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite keyword store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS keyword_profiles (
			name TEXT PRIMARY KEY,
			keywords TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a profile by name
func (s *SQLiteStore) Get(ctx context.Context, name string) (*core.RoleConfig, error) {
	var raw, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT keywords, updated_at
		FROM keyword_profiles
		WHERE name = ?
	`, name).Scan(&raw, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query keyword profile: %w", err)
	}

	profile := &core.RoleConfig{Name: name}
	if err := json.Unmarshal([]byte(raw), &profile.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}

	profile.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return profile, nil
}

// Save creates or replaces a profile
func (s *SQLiteStore) Save(ctx context.Context, profile *core.RoleConfig) error {
	stored, err := prepare(profile)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(stored.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO keyword_profiles (name, keywords, updated_at)
		VALUES (?, ?, ?)
	`, stored.Name, string(raw), stored.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save keyword profile: %w", err)
	}

	s.logger.Debug("Saved keyword profile",
		zap.String("name", stored.Name),
		zap.Int("keywords", len(stored.Keywords)))
	return nil
}

// Delete removes a profile
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM keyword_profiles
		WHERE name = ?
	`, name)
	if err != nil {
		return fmt.Errorf("failed to delete keyword profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		s.logger.Warn("Failed to get rows affected during delete", zap.Error(err))
		return nil
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all profile names in alphabetical order
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	return listNames(ctx, s.db)
}

// Stop closes the database connection
func (s *SQLiteStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}

func listNames(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name FROM keyword_profiles ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keyword profiles: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan keyword profile: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list keyword profiles: %w", err)
	}
	return names, nil
}
