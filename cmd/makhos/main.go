// Command makhos drives the Makhos search core from the terminal: a
// perft counter for move-generator verification and a single-position
// search, printing iteration info the way a UCI-less engine harness
// would.
//
// Grounded on the teacher's cmd/FrankyGo/main.go (flag-driven dispatch
// to a perft path, config.Setup()+logging.GetLog() bootstrap, the
// out.Sprintf locale-printer habit) and herohde-morlock's
// cmd/perft/main.go (the per-depth perft loop printing one CSV-style
// line per depth).
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tkopp/makhos/internal/config"
	"github.com/tkopp/makhos/internal/engine"
	"github.com/tkopp/makhos/internal/logging"
	"github.com/tkopp/makhos/internal/movegen"
	"github.com/tkopp/makhos/internal/search"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perftDepth := flag.Int("perft", 0, "run perft on the initial position to the given depth and exit")
	movetime := flag.Int64("movetime", 2000, "search time in milliseconds for -search")
	doSearch := flag.Bool("search", false, "search the initial position for -movetime ms and print the best move")
	cpuProfile := flag.Bool("profile", false, "capture a CPU profile to ./cpu.pprof while running")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	switch {
	case *perftDepth > 0:
		runPerft(*perftDepth)
	case *doSearch:
		runSearch(*movetime)
	default:
		log.Info("nothing to do: pass -perft <depth> or -search -movetime <ms>")
		flag.Usage()
	}
}

// runPerft prints one line per depth 1..depth, the node count reached
// from the initial position and how long it took, matching
// herohde-morlock's cmd/perft output shape.
func runPerft(depth int) {
	root := engine.InitialPosition()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(root, d)
		elapsed := time.Since(start)
		fmt.Println(out.Sprintf("perft,%d,%d,%v", d, nodes, elapsed))
	}
}

// runSearch runs one iterative-deepening search from the initial
// position, printing each completed depth's info line and the final
// chosen move.
func runSearch(movetimeMs int64) {
	e := engine.New()
	result, stats := e.IterativeDeepening(engine.InitialPosition(), movetimeMs, func(info search.Info) {
		fmt.Println(out.Sprintf("info depth %d score %d nodes %d pvlen %d", info.Depth, info.Score, info.Nodes, len(info.PV)))
	})
	if !result.HasBest {
		fmt.Println("no legal move from the initial position")
		return
	}
	fmt.Println(out.Sprintf("bestmove %d-%d depth %d score %d nodes %d", result.Best.From, result.Best.To, result.Depth, result.Score, stats.Nodes))
}
