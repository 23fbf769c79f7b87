// Package persistence records matches to SQLite: one row per match, one row
// per applied action. The log is append-only; it is a record for analysis,
// not a resumable save.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexfront/internal/ai"
)

// DB wraps a SQLite connection for match recording.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		map_radius INTEGER NOT NULL,
		winner TEXT,
		turns INTEGER,
		started_at TEXT NOT NULL,
		finished_at TEXT
	);

	CREATE TABLE IF NOT EXISTS actions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		team TEXT NOT NULL,
		kind TEXT NOT NULL,
		applied INTEGER NOT NULL,
		payload_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_actions_match_turn ON actions(match_id, turn);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// MatchRecorder logs one match's actions. Implements engine.Recorder.
type MatchRecorder struct {
	db      *DB
	matchID string
}

// StartMatch registers a new match and returns its recorder.
func (db *DB) StartMatch(seed uint64, mapRadius int) (*MatchRecorder, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		`INSERT INTO matches (id, seed, map_radius, started_at) VALUES (?, ?, ?, ?)`,
		id, int64(seed), mapRadius, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}
	return &MatchRecorder{db: db, matchID: id}, nil
}

// MatchID returns the recorder's match identifier.
func (r *MatchRecorder) MatchID() string {
	return r.matchID
}

// RecordAction appends one action. Recording failures are swallowed after
// the insert attempt: a logging hiccup must not abort the match.
func (r *MatchRecorder) RecordAction(turn int, team string, action ai.Action, applied bool) {
	payload, err := json.Marshal(actionPayload(action))
	if err != nil {
		payload = []byte("{}")
	}
	appliedInt := 0
	if applied {
		appliedInt = 1
	}
	r.db.conn.Exec(
		`INSERT INTO actions (match_id, turn, team, kind, applied, payload_json) VALUES (?, ?, ?, ?, ?, ?)`,
		r.matchID, turn, team, actionKind(action), appliedInt, string(payload),
	)
}

// RecordOutcome finishes the match row.
func (r *MatchRecorder) RecordOutcome(winner string, turns int) {
	r.db.conn.Exec(
		`UPDATE matches SET winner = ?, turns = ?, finished_at = ? WHERE id = ?`,
		winner, turns, time.Now().UTC().Format(time.RFC3339), r.matchID,
	)
}

func actionKind(a ai.Action) string {
	switch a.(type) {
	case ai.Move:
		return "move"
	case ai.Attack:
		return "attack"
	case ai.Capture:
		return "capture"
	case ai.Wait:
		return "wait"
	case ai.Build:
		return "build"
	case ai.Research:
		return "research"
	case ai.Design:
		return "design"
	case ai.EndTurn:
		return "end_turn"
	default:
		return "unknown"
	}
}

// actionPayload flattens a variant into a column-friendly map.
func actionPayload(a ai.Action) map[string]any {
	switch v := a.(type) {
	case ai.Move:
		return map[string]any{"unit_id": v.UnitID, "q": v.TargetQ, "r": v.TargetR}
	case ai.Attack:
		return map[string]any{"unit_id": v.UnitID, "q": v.TargetQ, "r": v.TargetR}
	case ai.Capture:
		return map[string]any{"unit_id": v.UnitID}
	case ai.Wait:
		return map[string]any{"unit_id": v.UnitID}
	case ai.Build:
		return map[string]any{"q": v.FactoryQ, "r": v.FactoryR, "template_id": v.TemplateID}
	case ai.Research:
		return map[string]any{"tech_id": v.TechID}
	case ai.Design:
		return map[string]any{"name": v.Name, "chassis": v.ChassisID, "weapon": v.WeaponID, "systems": v.SystemIDs}
	default:
		return map[string]any{}
	}
}

// MatchSummary is one finished match row.
type MatchSummary struct {
	ID     string `db:"id"`
	Seed   int64  `db:"seed"`
	Winner string `db:"winner"`
	Turns  int    `db:"turns"`
}

// RecentMatches lists the most recently finished matches.
func (db *DB) RecentMatches(limit int) ([]MatchSummary, error) {
	var out []MatchSummary
	err := db.conn.Select(&out,
		`SELECT id, seed, COALESCE(winner, '') AS winner, COALESCE(turns, 0) AS turns
		 FROM matches WHERE finished_at IS NOT NULL
		 ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	return out, nil
}
