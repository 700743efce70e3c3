// Package console wires the CPU, PPU, cartridge mapper, and
// controller into a runnable NES, and hosts the interactive
// single-step debugger and the ebiten-driven presentation loop.
package console

import (
	"fmt"
	"math"

	"github.com/kdelgado/nescore/apu"
	"github.com/kdelgado/nescore/mappers"
	"github.com/kdelgado/nescore/ppu"
)

const (
	baseRAMSize = 0x800 // 2 KiB built-in RAM

	maxAddress      = math.MaxUint16
	maxBaseRAM      = 0x1FFF
	maxPPURegisters = 0x3FFF
	maxIORegisters  = 0x4020
	maxSRAM         = 0x6000

	oamDMA  = 0x4014
	joypad1 = 0x4016
	joypad2 = 0x4017
)

// Bus is the CPU-side address decoder: it routes every CPU access to
// exactly one backing store (RAM, PPU registers, the controller, or
// cartridge ROM) and fans out simulated time to the PPU three dots
// per CPU cycle. The bus exclusively owns the PPU, the mapper, and
// the controller; the CPU never reaches past it into their internals.
type Bus struct {
	ppu        *ppu.PPU
	apu        *apu.APU
	mapper     mappers.Mapper
	controller Controller
	ram        [baseRAMSize]uint8

	lastNMI  bool // edge-detection state; not part of the PPU's own model
	nmiLatch bool
}

// New constructs a bus over the given cartridge mapper, owning a
// fresh PPU loaded with an 8 KiB copy of that cartridge's character
// data and its mirroring mode.
func New(m mappers.Mapper) *Bus {
	return &Bus{
		mapper: m,
		ppu:    ppu.New(chrROM(m), m.MirroringMode()),
		apu:    apu.New(),
	}
}

func chrROM(m mappers.Mapper) []uint8 {
	// The PPU owns character data directly rather than reaching back
	// through the bus on every access, so it stays a leaf component.
	const chrSize = 8 * 1024
	chr := make([]uint8, chrSize)
	for i := range chr {
		chr[i] = m.ChrRead(uint16(i))
	}
	return chr
}

// Resolution returns the NES's fixed framebuffer dimensions.
func (b *Bus) Resolution() (int, int) {
	return b.ppu.Resolution()
}

// PPU exposes the owned PPU to the renderer and the presentation layer.
func (b *Bus) PPU() *ppu.PPU {
	return b.ppu
}

// Read implements the CPU-visible address decode for reads.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= maxBaseRAM:
		return b.ram[addr&0x07FF]
	case addr <= maxPPURegisters:
		r := uint16(0x2000) + (addr & 0x2007 - 0x2000)
		switch r {
		case ppu.PPUCTRL, ppu.PPUMASK, ppu.OAMADDR, ppu.PPUSCROLL, ppu.PPUADDR:
			panic(fmt.Sprintf("console: read from write-only PPU port %#04x", addr))
		}
		return b.ppu.ReadReg(r)
	case addr == oamDMA:
		panic(fmt.Sprintf("console: read from write-only DMA port %#04x", addr))
	case addr == joypad1:
		return b.controller.read()
	case addr == joypad2:
		return 0 // second controller not modeled
	case addr < maxIORegisters:
		// APU register range: audio is out of scope for this core, and
		// the CPU-visible port always reads back zero here regardless
		// of what the stub underneath is tracking.
		return 0
	case addr < maxSRAM:
		return 0 // SRAM not modeled.
	case addr <= maxAddress:
		return b.mapper.PrgRead(addr)
	}
	panic(fmt.Sprintf("console: read from unrouted address %#04x", addr))
}

// Read16 composes a little-endian 16-bit read from two sequential
// byte reads, with the high-byte address wrapping modulo 0x10000.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write implements the CPU-visible address decode for writes.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= maxBaseRAM:
		b.ram[addr&0x07FF] = val
	case addr <= maxPPURegisters:
		r := uint16(0x2000) + (addr & 0x2007 - 0x2000)
		if r == ppu.PPUSTATUS {
			panic(fmt.Sprintf("console: write to read-only PPUSTATUS via %#04x", addr))
		}
		b.ppu.WriteReg(r, val)
		b.checkNMIEdge()
	case addr == oamDMA:
		b.runOAMDMA(val)
	case addr == joypad1:
		b.controller.write(val)
	case addr < maxIORegisters:
		// Accepted by the stub so its internal bookkeeping stays
		// consistent, but never surfaced back through Read.
		b.apu.WriteRegister(addr, val)
	case addr < maxSRAM:
		// SRAM not modeled.
	case addr <= maxAddress:
		b.mapper.PrgWrite(addr, val)
	default:
		panic(fmt.Sprintf("console: write to unrouted address %#04x", addr))
	}
}

// runOAMDMA synthesizes 256 sequential CPU reads starting at
// data<<8 and hands the block to the PPU's OAM writer in one shot.
func (b *Bus) runOAMDMA(data uint8) {
	base := uint16(data) << 8
	var block [256]uint8
	for i := range block {
		block[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(block)
}

// Tick advances simulated time by n CPU cycles: the PPU by 3n dots
// and the APU frame sequencer by n steps. It reports whether the PPU's
// NMI-pending edge transitioned from clear to raised during this call.
// The bus keeps no running cycle count; the CPU's Cycles field holds
// the total.
func (b *Bus) Tick(n int) bool {
	before := b.lastNMI
	b.ppu.Tick(3 * n)
	for i := 0; i < n; i++ {
		b.apu.Step()
	}
	edge := b.checkNMIEdge()
	return !before && edge
}

// checkNMIEdge refreshes the bus's view of the PPU's NMI line,
// latching a new edge if the PPU transitioned from clear to raised
// since the last check, and returns the PPU's current state. It is
// consulted after every operation that can move the PPU's NMI
// condition (ticking, and PPUCTRL writes), since the edge can appear
// outside of Tick itself.
func (b *Bus) checkNMIEdge() bool {
	now := b.ppu.NMIPending()
	if now && !b.lastNMI {
		b.nmiLatch = true
	}
	b.lastNMI = now
	return now
}

// TakeNMI returns whether an NMI edge is latched, and clears it. This
// is the accessor the CPU uses between instructions; Tick's own
// return value is a convenience for callers that consume it
// immediately instead.
func (b *Bus) TakeNMI() bool {
	v := b.nmiLatch
	b.nmiLatch = false
	return v
}

