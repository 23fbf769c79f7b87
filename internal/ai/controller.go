package ai

import (
	"sort"

	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/session"
)

// Controller plans one team's turn. Implementations are stateless apart
// from their injected randomness; PlanTurn must always terminate the list
// with EndTurn.
type Controller interface {
	ID() string
	Name() string
	PlanTurn(view *session.View, team string) []Action
}

// TechUnlockedNotifier is implemented by controllers that want to react to
// a tech completing mid-turn (for example by designing around the new
// component immediately).
type TechUnlockedNotifier interface {
	OnTechUnlocked(view *session.View, team, techID string) []Action
}

// Factory builds a controller with its randomness source.
type Factory func(rnd entropy.Source) Controller

var registry = map[string]Factory{}

// RegisterController adds a controller factory under its id. Later
// registrations of the same id win, which lets tests swap implementations.
func RegisterController(id string, f Factory) {
	registry[id] = f
}

// NewController builds the controller registered under id.
func NewController(id string, rnd entropy.Source) (Controller, bool) {
	f, ok := registry[id]
	if !ok {
		return nil, false
	}
	return f(rnd), true
}

// RegisteredControllers returns the known controller ids, sorted.
func RegisteredControllers() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	RegisterController("noop", func(rnd entropy.Source) Controller { return &NoOpAI{} })
	RegisterController("greedy", func(rnd entropy.Source) Controller { return &GreedyAI{rnd: rnd} })
	RegisterController("tactical", func(rnd entropy.Source) Controller { return &TacticalAI{rnd: rnd} })
	RegisterController("doctrine", func(rnd entropy.Source) Controller {
		d, err := NewDoctrineAI(DefaultDoctrine(), rnd)
		if err != nil {
			// The default doctrine is static and always compiles.
			panic(err)
		}
		return d
	})
}
