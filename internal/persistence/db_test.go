package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/hexfront/internal/ai"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMatchLifecycle(t *testing.T) {
	db := openTestDB(t)

	rec, err := db.StartMatch(42, 8)
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if rec.MatchID() == "" {
		t.Fatal("match id empty")
	}

	rec.RecordAction(1, "red", ai.Move{UnitID: "u-1", TargetQ: 1, TargetR: 0}, true)
	rec.RecordAction(1, "red", ai.Attack{UnitID: "u-1", TargetQ: 2, TargetR: 0}, false)
	rec.RecordAction(1, "red", ai.EndTurn{}, true)

	// An unfinished match does not show up in the recent list.
	if ms, err := db.RecentMatches(10); err != nil || len(ms) != 0 {
		t.Fatalf("recent = %v (%v), want empty before the outcome lands", ms, err)
	}

	rec.RecordOutcome("red", 17)

	ms, err := db.RecentMatches(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("%d recent matches, want 1", len(ms))
	}
	got := ms[0]
	if got.ID != rec.MatchID() || got.Seed != 42 || got.Winner != "red" || got.Turns != 17 {
		t.Fatalf("summary = %+v", got)
	}

	var kinds []string
	if err := db.conn.Select(&kinds,
		`SELECT kind FROM actions WHERE match_id = ? ORDER BY id`, rec.MatchID()); err != nil {
		t.Fatalf("select actions: %v", err)
	}
	want := []string{"move", "attack", "end_turn"}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestRejectedActionsKeepAppliedFlag(t *testing.T) {
	db := openTestDB(t)
	rec, err := db.StartMatch(1, 4)
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	rec.RecordAction(3, "blue", ai.Capture{UnitID: "u-9"}, false)

	var applied int
	if err := db.conn.Get(&applied,
		`SELECT applied FROM actions WHERE match_id = ?`, rec.MatchID()); err != nil {
		t.Fatalf("get: %v", err)
	}
	if applied != 0 {
		t.Fatalf("applied = %d, want 0 for a rejected action", applied)
	}
}
