// Command skirmish runs a headless AI-vs-AI match and prints a summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexfront/internal/ai"
	"github.com/talgya/hexfront/internal/engine"
	"github.com/talgya/hexfront/internal/entropy"
	"github.com/talgya/hexfront/internal/mapgen"
	"github.com/talgya/hexfront/internal/persistence"
	"github.com/talgya/hexfront/internal/session"
	"github.com/talgya/hexfront/internal/tech"
	"github.com/talgya/hexfront/internal/units"
)

func main() {
	var (
		seed        uint64
		radius      int
		maxTurns    int
		redCtrl     string
		blueCtrl    string
		dbPath      string
		catalogPath string
		techPath    string
		debug       bool
	)
	flag.Uint64Var(&seed, "seed", 0, "match seed (0 = random)")
	flag.IntVar(&radius, "radius", 8, "map radius in hexes")
	flag.IntVar(&maxTurns, "turns", 200, "maximum rounds before a draw")
	flag.StringVar(&redCtrl, "red", "tactical", "controller for team red: "+strings.Join(ai.RegisteredControllers(), ", "))
	flag.StringVar(&blueCtrl, "blue", "greedy", "controller for team blue")
	flag.StringVar(&dbPath, "db", "", "record the match to this SQLite file")
	flag.StringVar(&catalogPath, "catalog", "", "component catalog YAML (default: built-in)")
	flag.StringVar(&techPath, "tech", "", "tech tree YAML (default: built-in)")
	flag.BoolVar(&debug, "debug", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	rnd := entropy.NewRandomSource()
	if seed != 0 {
		rnd = entropy.NewSource(seed)
	}

	catalog := units.DefaultCatalog()
	if catalogPath != "" {
		var err error
		catalog, err = units.LoadCatalog(catalogPath)
		if err != nil {
			slog.Error("failed to load catalog", "path", catalogPath, "error", err)
			os.Exit(1)
		}
	}
	tree := tech.DefaultTree()
	if techPath != "" {
		var err error
		tree, err = tech.LoadTree(techPath)
		if err != nil {
			slog.Error("failed to load tech tree", "path", techPath, "error", err)
			os.Exit(1)
		}
	}

	teams := []string{"red", "blue"}
	mapCfg := mapgen.DefaultConfig(teams)
	mapCfg.Radius = radius
	mapCfg.Seed = int64(seed) + 1
	m, roster := mapgen.Generate(mapCfg)
	slog.Info("battlefield generated", "radius", radius, "tiles", m.TileCount(), "buildings", len(roster.All()))

	sess := session.New(m, catalog, tree, rnd)
	sess.Rosters = roster

	cfg := engine.DefaultConfig()
	cfg.MaxTurns = maxTurns
	eng := engine.New(sess, rnd, cfg)

	for i, ctrlID := range []string{redCtrl, blueCtrl} {
		ctrl, ok := ai.NewController(ctrlID, rnd)
		if !ok {
			slog.Error("unknown controller", "id", ctrlID)
			os.Exit(1)
		}
		eng.AddTeam(teams[i], ctrl)
		slog.Info("controller seated", "team", teams[i], "controller", ctrl.Name())
	}

	if dbPath != "" {
		db, err := persistence.Open(dbPath)
		if err != nil {
			slog.Error("failed to open match db", "path", dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		rec, err := db.StartMatch(seed, radius)
		if err != nil {
			slog.Error("failed to start match record", "error", err)
			os.Exit(1)
		}
		eng.SetRecorder(rec)
		slog.Info("recording match", "id", rec.MatchID(), "path", dbPath)
	}

	winner, turns := eng.Run()

	fmt.Println()
	if winner == "" {
		fmt.Printf("Draw after %s turns.\n", humanize.Comma(int64(turns)))
	} else {
		fmt.Printf("Team %s wins on turn %s.\n", winner, humanize.Comma(int64(turns)))
	}
	for _, team := range teams {
		res := sess.Ledger.Team(team)
		fmt.Printf("  %-6s units=%d buildings=%d funds=%s science=%s\n",
			team,
			len(sess.UnitsOf(team)),
			len(sess.Rosters.OwnedBy(team)),
			humanize.Comma(int64(res.Funds)),
			humanize.Comma(int64(res.Science)),
		)
	}
}
