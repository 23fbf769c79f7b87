// Package economy tracks per-team funds and science.
package economy

// Resources holds one team's counters. Both stay non-negative; all
// mutation goes through the Add/Spend methods.
type Resources struct {
	Funds   int `json:"funds"`
	Science int `json:"science"`
}

// AddFunds credits funds. Negative amounts are ignored.
func (r *Resources) AddFunds(amount int) {
	if amount > 0 {
		r.Funds += amount
	}
}

// AddScience credits science. Negative amounts are ignored.
func (r *Resources) AddScience(amount int) {
	if amount > 0 {
		r.Science += amount
	}
}

// SpendFunds debits funds, reporting false (and changing nothing) when the
// balance is insufficient.
func (r *Resources) SpendFunds(amount int) bool {
	if amount < 0 || amount > r.Funds {
		return false
	}
	r.Funds -= amount
	return true
}

// SpendScience debits science, reporting false when the balance is
// insufficient.
func (r *Resources) SpendScience(amount int) bool {
	if amount < 0 || amount > r.Science {
		return false
	}
	r.Science -= amount
	return true
}

// Ledger holds every team's resources, created on first touch, iterated in
// first-touch order.
type Ledger struct {
	order  []string
	byTeam map[string]*Resources
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{byTeam: make(map[string]*Resources)}
}

// Team returns the resources for a team, creating a zeroed entry on first
// access.
func (l *Ledger) Team(team string) *Resources {
	if r, ok := l.byTeam[team]; ok {
		return r
	}
	r := &Resources{}
	l.byTeam[team] = r
	l.order = append(l.order, team)
	return r
}

// Lookup returns a team's resources without creating an entry. Read paths
// use this so a query for an unseated team leaves the ledger untouched.
func (l *Ledger) Lookup(team string) (*Resources, bool) {
	r, ok := l.byTeam[team]
	return r, ok
}

// Teams returns team names in first-touch order.
func (l *Ledger) Teams() []string {
	return l.order
}
