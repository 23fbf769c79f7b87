// Package tech implements the prerequisite-gated technology graph and each
// team's research state.
package tech

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category says what kind of component a tech unlocks.
type Category string

const (
	CategoryChassis Category = "chassis"
	CategoryWeapon  Category = "weapon"
	CategorySystem  Category = "system"
)

// Definition is one node of the tech graph. Requires is conjunctive: every
// listed tech must be unlocked first.
type Definition struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Unlocks  string   `yaml:"unlocks"`
	Cost     int      `yaml:"cost"`
	Requires []string `yaml:"requires"`
}

// Tree is a validated DAG of definitions, iterated in declaration order.
type Tree struct {
	defs []Definition
	byID map[string]*Definition
}

// NewTree validates the definitions: unique ids, known prerequisites, and
// no cycles.
func NewTree(defs []Definition) (*Tree, error) {
	t := &Tree{
		defs: append([]Definition(nil), defs...),
		byID: make(map[string]*Definition, len(defs)),
	}
	for i := range t.defs {
		d := &t.defs[i]
		if _, dup := t.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate tech id %q", d.ID)
		}
		t.byID[d.ID] = d
	}
	for _, d := range t.defs {
		for _, req := range d.Requires {
			if _, ok := t.byID[req]; !ok {
				return nil, fmt.Errorf("tech %q requires unknown tech %q", d.ID, req)
			}
		}
	}
	if err := t.checkAcyclic(); err != nil {
		return nil, err
	}
	return t, nil
}

// checkAcyclic runs a coloring DFS over the requires edges.
func (t *Tree) checkAcyclic() error {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[string]int, len(t.defs))
	var visit func(id string) error
	visit = func(id string) error {
		switch color[id] {
		case grey:
			return fmt.Errorf("tech graph cycle through %q", id)
		case black:
			return nil
		}
		color[id] = grey
		for _, req := range t.byID[id].Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		color[id] = black
		return nil
	}
	for _, d := range t.defs {
		if err := visit(d.ID); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition with the given id.
func (t *Tree) Get(id string) (*Definition, bool) {
	d, ok := t.byID[id]
	return d, ok
}

// All returns every definition in declaration order. Callers must not
// mutate the returned slice.
func (t *Tree) All() []Definition {
	return t.defs
}

// DefaultTree returns the built-in technology graph. Ids carry the category
// as a substring; planner scoring relies on that.
func DefaultTree() *Tree {
	t, err := NewTree([]Definition{
		{ID: "chassis-wheels", Name: "Wheeled Chassis", Category: CategoryChassis, Unlocks: "wheels", Cost: 10},
		{ID: "chassis-treads", Name: "Tracked Chassis", Category: CategoryChassis, Unlocks: "treads", Cost: 25, Requires: []string{"chassis-wheels"}},
		{ID: "chassis-hover", Name: "Hover Chassis", Category: CategoryChassis, Unlocks: "hover", Cost: 40, Requires: []string{"chassis-treads"}},
		{ID: "weapon-rockets", Name: "Rocket Pods", Category: CategoryWeapon, Unlocks: "rockets", Cost: 15, Requires: []string{"chassis-wheels"}},
		{ID: "weapon-cannon", Name: "Cannon", Category: CategoryWeapon, Unlocks: "cannon", Cost: 20, Requires: []string{"chassis-treads"}},
		{ID: "weapon-artillery", Name: "Artillery", Category: CategoryWeapon, Unlocks: "artillery", Cost: 35, Requires: []string{"weapon-cannon"}},
		{ID: "system-toolkit", Name: "Engineering Toolkit", Category: CategorySystem, Unlocks: "toolkit", Cost: 15},
		{ID: "system-armor", Name: "Armor Plating", Category: CategorySystem, Unlocks: "armor", Cost: 20, Requires: []string{"chassis-treads"}},
	})
	if err != nil {
		// The built-in tree is static; a failure here is a programming error.
		panic(err)
	}
	return t
}

// LoadTree reads a technology graph from a YAML file.
func LoadTree(path string) (*Tree, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tech tree: %w", err)
	}
	var defs []Definition
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse tech tree: %w", err)
	}
	return NewTree(defs)
}
