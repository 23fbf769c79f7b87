// Package engine drives the turn loop: income, planning, and applying each
// planner action against the session, one at a time.
package engine

import (
	"log/slog"

	"github.com/talgya/hexfront/internal/ai"
	"github.com/talgya/hexfront/internal/buildings"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/session"
)

// Per-turn income by building type.
const (
	cityFunds      = 100
	factoryFunds   = 50
	labScience     = 5
	capitalFunds   = 150
	capitalScience = 2
)

// Config tunes a match.
type Config struct {
	MaxTurns       int // full rounds before the match is called a draw
	CombatVariance int // damage spread, each side rolls in [-v, +v]
}

// DefaultConfig returns the standard match settings.
func DefaultConfig() Config {
	return Config{MaxTurns: 200, CombatVariance: 1}
}

// Recorder observes applied actions and the match outcome. Nil disables
// recording.
type Recorder interface {
	RecordAction(turn int, team string, action ai.Action, applied bool)
	RecordOutcome(winner string, turns int)
}

// Engine owns the turn sequence for one match.
type Engine struct {
	sess        *session.Session
	cfg         Config
	rnd         entropy.Source
	teams       []string
	controllers map[string]ai.Controller
	recorder    Recorder
	turn        int
}

// New creates an engine over a prepared session.
func New(sess *session.Session, rnd entropy.Source, cfg Config) *Engine {
	return &Engine{
		sess:        sess,
		cfg:         cfg,
		rnd:         rnd,
		controllers: make(map[string]ai.Controller),
	}
}

// SetRecorder attaches a match recorder.
func (e *Engine) SetRecorder(r Recorder) {
	e.recorder = r
}

// AddTeam seats a controller for a team. Teams act in the order they are
// added.
func (e *Engine) AddTeam(team string, ctrl ai.Controller) {
	e.sess.Team(team)
	e.teams = append(e.teams, team)
	e.controllers[team] = ctrl
}

// Turn returns the current round number, starting at 1.
func (e *Engine) Turn() int {
	return e.turn
}

// Run plays rounds until a team wins or MaxTurns elapses. Returns the
// winner ("" for a draw) and the number of rounds played.
func (e *Engine) Run() (winner string, turns int) {
	for e.turn = 1; e.turn <= e.cfg.MaxTurns; e.turn++ {
		for _, team := range e.teams {
			e.RunTurn(team)
			if w, over := e.winner(); over {
				slog.Info("match decided", "winner", w, "turn", e.turn)
				if e.recorder != nil {
					e.recorder.RecordOutcome(w, e.turn)
				}
				return w, e.turn
			}
		}
	}
	slog.Info("match drawn", "turns", e.cfg.MaxTurns)
	if e.recorder != nil {
		e.recorder.RecordOutcome("", e.cfg.MaxTurns)
	}
	return "", e.cfg.MaxTurns
}

// RunTurn plays one team's turn: reset activations, accrue income, plan,
// and apply the plan in order. Stale actions are skipped, never fatal.
func (e *Engine) RunTurn(team string) {
	e.sess.ResetTurn(team)
	e.accrueIncome(team)

	ctrl, ok := e.controllers[team]
	if !ok {
		return
	}
	plan := ctrl.PlanTurn(e.sess.View(), team)
	slog.Debug("turn planned", "team", team, "turn", e.turn, "actions", len(plan))

	for _, action := range plan {
		applied, end := e.apply(team, ctrl, action)
		if e.recorder != nil {
			e.recorder.RecordAction(e.turn, team, action, applied)
		}
		if !applied {
			slog.Debug("action rejected", "team", team, "action", action.String())
		}
		if end {
			break
		}
	}
}

func (e *Engine) accrueIncome(team string) {
	res := e.sess.Ledger.Team(team)
	for _, b := range e.sess.Rosters.OwnedBy(team) {
		switch b.Type {
		case buildings.TypeCity:
			res.AddFunds(cityFunds)
		case buildings.TypeFactory:
			res.AddFunds(factoryFunds)
		case buildings.TypeLab:
			res.AddScience(labScience)
		case buildings.TypeCapital:
			res.AddFunds(capitalFunds)
			res.AddScience(capitalScience)
		}
	}
}

// winner reports whether the match is decided: one team holds every
// capital, or only one team can still field an army.
func (e *Engine) winner() (string, bool) {
	capitals := e.sess.Rosters.OfType(buildings.TypeCapital)
	if len(capitals) > 0 {
		holder := capitals[0].Owner
		all := holder != ""
		for _, c := range capitals[1:] {
			if c.Owner != holder {
				all = false
				break
			}
		}
		if all {
			return holder, true
		}
	}

	alive := ""
	count := 0
	for _, team := range e.teams {
		if e.teamAlive(team) {
			alive = team
			count++
		}
	}
	if count == 1 && len(e.teams) > 1 {
		return alive, true
	}
	return "", false
}

// teamAlive: a team with no units and no factory to build from is out.
func (e *Engine) teamAlive(team string) bool {
	if len(e.sess.UnitsOf(team)) > 0 {
		return true
	}
	for _, b := range e.sess.Rosters.OwnedBy(team) {
		if b.Type == buildings.TypeFactory {
			return true
		}
	}
	return false
}
