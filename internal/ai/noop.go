package ai

import "github.com/talgya/hexfront/internal/session"

// NoOpAI always passes. Baseline for tests and a stand-in for vacant seats.
type NoOpAI struct{}

func (a *NoOpAI) ID() string   { return "noop" }
func (a *NoOpAI) Name() string { return "No-Op" }

func (a *NoOpAI) PlanTurn(view *session.View, team string) []Action {
	return []Action{EndTurn{}}
}
