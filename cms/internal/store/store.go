// CLAUDE:SUMMARY Store wrapper owning the CMS objects database handle.
package store

import "database/sql"

// Store wraps the CMS objects database.
type Store struct {
	DB *sql.DB
}

// Open wraps an already-opened database and applies the schema.
func Open(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
