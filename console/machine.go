package console

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdelgado/nescore/mos6502"
	"github.com/kdelgado/nescore/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// Machine is the top-level owner of a running NES: it holds the CPU,
// which in turn exclusively owns the Bus. Machine itself exists only
// to satisfy ebiten.Game and to drive the step loop; it never reaches
// past the CPU into Bus or PPU internals directly except to read the
// PPU's render view for presentation and, in the BIOS monitor, to read
// bus memory for the stack and memory displays.
type Machine struct {
	cpu *mos6502.CPU
	bus *Bus
}

// NewMachine wires a fresh CPU to bus and performs the reset
// sequence, ready to run.
func NewMachine(bus *Bus) *Machine {
	cpu := mos6502.New(bus)
	cpu.Reset()

	w, h := bus.Resolution()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Machine{cpu: cpu, bus: bus}
}

// Layout returns the constant NES resolution, forcing ebiten to scale
// the display rather than changing the logical framebuffer size.
func (m *Machine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.bus.Resolution()
}

// Draw composites the current PPU state into screen using the
// stateless renderer.
func (m *Machine) Draw(screen *ebiten.Image) {
	view := m.bus.PPU().View()
	frame := render.Frame(view)

	w, h := m.bus.Resolution()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.Set(x, y, frame[y*w+x])
		}
	}
}

// Update is part of the ebiten.Game interface. Emulation runs on its
// own goroutine via Run, driven by a context rather than by ebiten's
// frame pacing, so Update has nothing to do.
func (m *Machine) Update() error {
	return nil
}

// Run drives the emulation loop until ctx is cancelled: poll for a
// pending NMI (handled inside CPU.Step), execute one instruction, and
// let the bus fan time out to the PPU. There is no frame-complete
// branch here because presentation samples the PPU's state directly
// from Draw rather than being pushed a completed frame.
func (m *Machine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			m.cpu.Step()
		}
	}
}

func readAddr(prompt string) uint16 {
	var a uint16
	fmt.Printf(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// BIOS is an interactive text monitor for single-stepping the
// machine and inspecting CPU/memory state, carried forward from the
// project's longstanding debugging aid.
func (m *Machine) BIOS(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", m.cpu)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run until a breakpoint or interrupt")
		fmt.Println("(S)tep - step the cpu one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - select a memory range to display")
		fmt.Println("S(t)ack - show last 3 items on the stack")
		fmt.Println("(P)C - set program counter")
		fmt.Println("(Q)uit - shutdown the emulator")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddr("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			m.cpu.SetPC(readAddr("Set PC to what address (eg: 0400)?: "))
		case 'q', 'Q':
			return
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func(ctx context.Context) {
				for {
					select {
					case <-sigQuit:
						cancel()
					case <-ctx.Done():
						return
					}
				}
			}(cctx)

		run:
			for {
				select {
				case <-cctx.Done():
					break run
				default:
					m.cpu.Step()
					if _, ok := breaks[m.cpu.PC]; ok {
						break run
					}
				}
			}
			cancel()
		case 's', 'S':
			m.cpu.Step()
		case 't', 'T':
			fmt.Println()
			// StackAddr is the next free slot; the last pushed byte is
			// the one after it.
			top := m.cpu.StackAddr()
			for addr := top + 1; addr <= 0x01ff && addr <= top+3; addr++ {
				fmt.Printf("0x%04x: 0x%02x ", addr, m.bus.Read(addr))
			}
			fmt.Printf("\n\n")
		case 'e', 'E':
			m.cpu.Reset()
		case 'm', 'M':
			fmt.Println()
			low := readAddr("Low address (eg f00d): ")
			high := readAddr("High address (eg beef): ")
			fmt.Println()

			x := 1
			i := low
			for {
				fmt.Printf("0x%04x: 0x%02x ", i, m.bus.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high || i == math.MaxUint16 {
					break
				}
				x++
				i++
			}
			fmt.Printf("\n\n")
		}
	}
}
