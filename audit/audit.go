// CLAUDE:SUMMARY SQLite audit log for admin actions — sync writes plus a buffered async path flushed in batches.
// Package audit records admin console actions (expansions, imports,
// rollout flips, logins) in an append-only SQLite table.
package audit

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dimilowe/VCMStore-sub005/idgen"
)

// Entry is one audit record. Zero fields are filled with defaults on write.
type Entry struct {
	EntryID    string `json:"entry_id"`
	Timestamp  int64  `json:"timestamp"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	Parameters string `json:"parameters"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	Transport  string `json:"transport"`
}

const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	entry_id      TEXT PRIMARY KEY,
	timestamp     INTEGER NOT NULL,
	user_id       TEXT NOT NULL DEFAULT '',
	action        TEXT NOT NULL,
	parameters    TEXT NOT NULL DEFAULT '{}',
	status        TEXT NOT NULL DEFAULT 'success',
	error_message TEXT NOT NULL DEFAULT '',
	transport     TEXT NOT NULL DEFAULT 'http'
);
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action, timestamp);
`

// batchSize is the async flush threshold.
const batchSize = 32

// Option configures a SQLiteLogger.
type Option func(*SQLiteLogger)

// WithIDGenerator overrides the entry-id generator.
func WithIDGenerator(gen func() string) Option {
	return func(l *SQLiteLogger) { l.newID = gen }
}

// SQLiteLogger writes audit entries to an audit_log table.
type SQLiteLogger struct {
	db    *sql.DB
	newID func() string

	mu     sync.Mutex
	buf    []*Entry
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

// NewSQLiteLogger returns a logger on db. Call Init before logging.
func NewSQLiteLogger(db *sql.DB, opts ...Option) *SQLiteLogger {
	l := &SQLiteLogger{
		db:    db,
		newID: idgen.Prefixed("aud_", idgen.Default),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.flushLoop()
	return l
}

// Init creates the audit_log table.
func (l *SQLiteLogger) Init() error {
	_, err := l.db.Exec(schema)
	return err
}

// Log writes one entry synchronously.
func (l *SQLiteLogger) Log(ctx context.Context, e *Entry) error {
	l.fillDefaults(e)
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO audit_log (entry_id, timestamp, user_id, action, parameters, status, error_message, transport)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.Timestamp, e.UserID, e.Action, e.Parameters, e.Status, e.Error, e.Transport)
	return err
}

// LogAsync buffers one entry. Entries are flushed in batches; Close
// flushes whatever remains.
func (l *SQLiteLogger) LogAsync(e *Entry) {
	l.fillDefaults(e)
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.buf = append(l.buf, e)
	if len(l.buf) >= batchSize {
		select {
		case l.wake <- struct{}{}:
		default:
		}
	}
	l.mu.Unlock()
}

// Close flushes buffered entries and stops the flush loop.
func (l *SQLiteLogger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()
	close(l.wake)
	<-l.done
	return l.flush()
}

func (l *SQLiteLogger) flushLoop() {
	defer close(l.done)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case _, ok := <-l.wake:
			l.flush()
			if !ok {
				return
			}
		case <-ticker.C:
			l.flush()
		}
	}
}

func (l *SQLiteLogger) flush() error {
	l.mu.Lock()
	pending := l.buf
	l.buf = nil
	l.mu.Unlock()
	if len(pending) == 0 {
		return nil
	}

	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	for _, e := range pending {
		if _, err := tx.Exec(`
			INSERT INTO audit_log (entry_id, timestamp, user_id, action, parameters, status, error_message, transport)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EntryID, e.Timestamp, e.UserID, e.Action, e.Parameters, e.Status, e.Error, e.Transport); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (l *SQLiteLogger) fillDefaults(e *Entry) {
	if e.EntryID == "" {
		e.EntryID = l.newID()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().UnixMilli()
	}
	if e.Parameters == "" {
		e.Parameters = "{}"
	}
	if e.Status == "" {
		if e.Error != "" {
			e.Status = "error"
		} else {
			e.Status = "success"
		}
	}
	if e.Transport == "" {
		e.Transport = "http"
	}
}
