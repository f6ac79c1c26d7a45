package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/brandon-schabel/td-engine/common"
)

func main() {
	levelName := flag.String("level", "arena.yaml", "level name in levels/")
	debug := flag.Bool("debug", false, "draw paths and nav stats")
	seed := flag.Int64("seed", 1, "recovery rng seed")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("td-engine")

	game := NewGame(*levelName, *debug, *seed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
