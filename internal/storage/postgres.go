package storage

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
)

// PostgresKV implements KV on a shared Postgres table, so several machines can
// point at the same bookmark list.
type PostgresKV struct {
	db *sql.DB
}

// NewPostgresKV connects using a lib/pq connection string and ensures the table exists.
func NewPostgresKV(dsn string) (*PostgresKV, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS bmlite_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresKV{db: db}, nil
}

// Get reads the value for key.
func (p *PostgresKV) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow("SELECT value FROM bmlite_kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts the value for key.
func (p *PostgresKV) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO bmlite_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}

// Close closes the connection pool.
func (p *PostgresKV) Close() error {
	return p.db.Close()
}
