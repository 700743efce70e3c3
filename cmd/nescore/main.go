// Command nescore runs an iNES ROM on the emulator core.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/kdelgado/nescore/console"
	"github.com/kdelgado/nescore/mappers"
	"github.com/kdelgado/nescore/nesrom"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	bios    = flag.Bool("bios", false, "Drop into the interactive debugger instead of running freely.")
)

func main() {
	flag.Parse()

	if os.Getenv("NESCORE_LOG_LEVEL") == "debug" {
		log.SetFlags(log.Ltime | log.Lshortfile)
	}

	rom, err := nesrom.Load(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	bus := console.New(m)
	machine := console.NewMachine(bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *bios {
		machine.BIOS(ctx)
		return
	}

	go machine.Run(ctx)

	if err := ebiten.RunGame(machine); err != nil {
		log.Fatal(err)
	}
}
