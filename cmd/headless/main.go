package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/brandon-schabel/td-engine/levels"
	"github.com/brandon-schabel/td-engine/prefabs"
	"github.com/brandon-schabel/td-engine/sim"
)

// Runs the simulation without a window for a fixed number of ticks and prints
// a navigation report. Useful for tuning steering thresholds from the shell.
func main() {
	levelName := flag.String("level", "arena.yaml", "level name in levels/")
	ticks := flag.Int("ticks", 3600, "fixed ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	seed := flag.Int64("seed", 1, "recovery rng seed")
	script := flag.Bool("script", true, "use the tengo recovery script")
	verbose := flag.Bool("v", false, "log every nav event")
	flag.Parse()

	lvl, err := levels.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("headless: %v", err)
	}

	var src []byte
	if *script {
		src, err = prefabs.LoadScript("recovery.tengo")
		if err != nil {
			log.Printf("headless: recovery script unavailable, using built-in policy: %v", err)
			src = nil
		}
	}

	s, err := sim.New(lvl, sim.Options{
		Seed:           *seed,
		Verbose:        *verbose,
		RecoveryScript: src,
	})
	if err != nil {
		log.Fatalf("headless: %v", err)
	}

	for i := 0; i < *ticks; i++ {
		s.Step(*dt)
	}

	fmt.Println(s.Report())
}
