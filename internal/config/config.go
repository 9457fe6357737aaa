// Package config holds the globally available configuration values
// for the search core: tunable search constants (aspiration window,
// LMR thresholds, extension budget, depth/ply caps, finisher bonuses)
// and the evaluator's fixed weights, populated from defaults in
// init() and optionally overridden by a config.toml file.
//
// Modeled on the teacher's config/config.go + config/evalconfig.go: a
// package-level Settings struct of nested configuration structs, read
// via github.com/BurntSushi/toml in Setup(), with String() rendering
// the active values through reflection for debug/CLI output.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the optional TOML override file, relative
// to the working directory.
var ConfFile = "./config.toml"

// LogLevel and SearchLogLevel drive internal/logging's backend level.
var (
	LogLevel       = 5
	SearchLogLevel = 5
	TestLogLevel   = 5
)

// Settings is the global, mutable configuration read in from file (or
// left at its init() defaults).
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// searchConfiguration holds every tunable named in spec.md §4.7/§9:
// aspiration window widths, LMR thresholds, the extension budget, the
// absolute depth/ply caps, mate/finisher scoring constants and the TT
// size. None of these are magic numbers inside internal/search.
type searchConfiguration struct {
	MaxDepth       int // absolute iterative-deepening depth cap (spec.md §4.7.1: "e.g. 22")
	MaxPly         int // recursion ply cap (spec.md §4.7.4 step 1: "e.g. 96")
	Mate           int32
	AspirationWin  int32 // initial aspiration half-width (+-80)
	AspirationStep int32 // widen-on-fail step (+-160)
	LMRMinMoveIdx  int   // move index at/after which LMR may apply ("index >= 3")
	LMRMinDepth    int   // depth at/above which LMR may apply ("d >= 2")
	ExtBudgetKings int   // initial extension budget, kings-only root with <=3 kings
	ExtBudgetDefault int // initial extension budget otherwise
	FinisherWin2Score int32
	FinisherWin3Score int32
	RootFinisherBonus int32
	RootMobilityCap   int32
	TTSizeMB          int
}

// evalConfiguration holds the evaluator's base weights (spec.md §4.4).
// The phase-blended weights (king value, promotion progress,
// simplification, capture swing) are computed inline in internal/eval
// since they depend on the position itself, not on static config, but
// the remaining fixed weights live here so they are not magic numbers.
type evalConfiguration struct {
	ManValue       int32
	MobilityMen    int32
	MobilityKing   int32
	Center         int32
	BackRankGuard  int32
	KingProximity  int32
	TrappedKing    int32
	CaptureSwing   int32
	CaptureTargets int32
}

func init() {
	Settings.Search = searchConfiguration{
		MaxDepth:          22,
		MaxPly:            96,
		Mate:              999_999,
		AspirationWin:     80,
		AspirationStep:    160,
		LMRMinMoveIdx:     3,
		LMRMinDepth:       2,
		ExtBudgetKings:    2,
		ExtBudgetDefault:  1,
		FinisherWin2Score: 1_000_000,
		FinisherWin3Score: 900_000,
		RootFinisherBonus: 500,
		RootMobilityCap:   100,
		TTSizeMB:          64,
	}
	Settings.Eval = evalConfiguration{
		ManValue:       100,
		MobilityMen:    2,
		MobilityKing:   3,
		Center:         2,
		BackRankGuard:  3,
		KingProximity:  2,
		TrappedKing:    -12,
		CaptureSwing:   90,
		CaptureTargets: 45,
	}
}

// Setup reads the optional config.toml and overrides defaults with
// whatever it finds; a missing or malformed file is logged and
// defaults are kept, matching the teacher's log-and-fallback style.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	initialized = true
}

// String renders the active settings via reflection, for debug
// output, exactly as the teacher's conf.String() does.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Search).Elem())
	b.WriteString("\nEval Config:\n")
	writeFields(&b, reflect.ValueOf(&c.Eval).Elem())
	return b.String()
}

func writeFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanInterface() {
			continue
		}
		fmt.Fprintf(b, "%-2d: %-20s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
