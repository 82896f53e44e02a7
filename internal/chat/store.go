package chat

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	// SQLite driver (required for database/sql registration).
	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/cultrend/trendseer/internal/errors"
	"github.com/cultrend/trendseer/internal/profile"
)

// Store persists conversation history in SQLite.
type Store struct {
	db *sql.DB
}

// StoredMessage is one persisted chat turn.
type StoredMessage struct {
	ID        string
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}

// OpenStore opens the history database at the given path, creating the
// parent directory and schema if needed.
func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to create history directory", apperrors.CategorySystem)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to open history db", apperrors.CategorySystem)
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to configure history db", apperrors.CategorySystem)
		}
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		stage            TEXT NOT NULL,
		preferences_json TEXT,
		message_count    INTEGER NOT NULL DEFAULT 0,
		created_at       INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
		updated_at       INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at DESC);

	CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at);

	CREATE TRIGGER IF NOT EXISTS messages_count_insert
		AFTER INSERT ON messages
		BEGIN
			UPDATE sessions
			SET message_count = message_count + 1, updated_at = strftime('%s', 'now')
			WHERE id = NEW.session_id;
		END;
	`

	if _, err := s.db.Exec(schema); err != nil {
		return apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to initialize history schema", apperrors.CategorySystem)
	}
	return nil
}

// SaveSession upserts a session's stage and captured preferences.
func (s *Store) SaveSession(sess *Session) error {
	prefs, err := json.Marshal(sess.Preferences())
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to encode preferences", apperrors.CategorySystem)
	}

	_, err = s.db.Exec(`
		INSERT INTO sessions (id, stage, preferences_json) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stage = excluded.stage,
			preferences_json = excluded.preferences_json,
			updated_at = strftime('%s', 'now')`,
		sess.ID, string(sess.Stage), string(prefs))
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to save session", apperrors.CategorySystem)
	}
	return nil
}

// SaveMessage appends one chat turn to a session's history.
func (s *Store) SaveMessage(sessionID, role, content string) error {
	_, err := s.db.Exec(
		"INSERT INTO messages (id, session_id, role, content) VALUES (?, ?, ?, ?)",
		uuid.NewString(), sessionID, role, content)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to save message", apperrors.CategorySystem)
	}
	return nil
}

// History returns every stored message for a session in order.
func (s *Store) History(sessionID string) ([]StoredMessage, error) {
	rows, err := s.db.Query(
		"SELECT id, session_id, role, content, created_at FROM messages WHERE session_id = ? ORDER BY created_at, rowid",
		sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to load history", apperrors.CategorySystem)
	}
	defer rows.Close()

	var out []StoredMessage
	for rows.Next() {
		var m StoredMessage
		var created int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &created); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to scan message", apperrors.CategorySystem)
		}
		m.CreatedAt = time.Unix(created, 0)
		out = append(out, m)
	}
	return out, rows.Err()
}

// SessionPreferences loads the preference set saved for a session.
func (s *Store) SessionPreferences(sessionID string) (profile.UserPreferences, error) {
	var raw sql.NullString
	err := s.db.QueryRow("SELECT preferences_json FROM sessions WHERE id = ?", sessionID).Scan(&raw)
	if err != nil {
		return profile.UserPreferences{}, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to load session", apperrors.CategorySystem)
	}

	var prefs profile.UserPreferences
	if raw.Valid && raw.String != "" {
		if err := json.Unmarshal([]byte(raw.String), &prefs); err != nil {
			return profile.UserPreferences{}, apperrors.Wrap(err, apperrors.CodeHistoryStoreFailed, "failed to decode preferences", apperrors.CategorySystem)
		}
	}
	return prefs, nil
}
