package keywords

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of the KeywordRepository interface
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL keyword store.
// parseTime is forced on so updated_at scans into time.Time.
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	dsn, err := withParseTime(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS keyword_profiles (
			name VARCHAR(255) PRIMARY KEY,
			keywords TEXT NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Get retrieves a profile by name
func (s *MySQLStore) Get(ctx context.Context, name string) (*core.RoleConfig, error) {
	var raw string
	profile := &core.RoleConfig{Name: name}

	err := s.db.QueryRowContext(ctx, `
		SELECT keywords, updated_at
		FROM keyword_profiles
		WHERE name = ?
	`, name).Scan(&raw, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query keyword profile: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &profile.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}

	return profile, nil
}

// Save creates or replaces a profile
func (s *MySQLStore) Save(ctx context.Context, profile *core.RoleConfig) error {
	stored, err := prepare(profile)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(stored.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO keyword_profiles (name, keywords, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			keywords = VALUES(keywords),
			updated_at = VALUES(updated_at)
	`, stored.Name, string(raw), stored.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save keyword profile: %w", err)
	}

	return nil
}

// Delete removes a profile
func (s *MySQLStore) Delete(ctx context.Context, name string) error {
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
func (s *MySQLStore) List(ctx context.Context) ([]string, error) {
	return listNames(ctx, s.db)
}

// Stop closes the database connection
func (s *MySQLStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
