// Package mappers implements and registers cartridge mapper chips,
// referenced numerically by iNES ROM headers.
package mappers

import (
	"fmt"

	"github.com/kdelgado/nescore/nesrom"
)

// Mapper decodes cartridge-space CPU and PPU accesses for a specific
// mapper chip.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) uint8     // Read PRG data, addr in CPU space (0x8000-0xFFFF)
	PrgWrite(uint16, uint8)   // Write PRG data (bank-select registers on mappers that have them)
	ChrRead(uint16) uint8     // Read CHR data, addr in PPU space (0x0000-0x1FFF)
	ChrWrite(uint16, uint8)   // Write CHR data (only meaningful with CHR-RAM)
	MirroringMode() uint8     // Nametable mirroring mode the cartridge hardwires
	HasSaveRAM() bool         // Whether the cartridge exposes Save RAM at 0x6000-0x7FFF
}

// allMappers is a global registry of mapper constructors, keyed by
// mapper id. Each init() in this package registers its mapper here;
// Get builds a fresh mapper and initializes it against a concrete ROM.
var allMappers = map[uint16]func() Mapper{}

// RegisterMapper adds a mapper constructor to the registry. It panics
// if id is already registered, since that indicates a programming
// error rather than a runtime condition.
func RegisterMapper(id uint16, ctor func() Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: id %d already registered", id))
	}
	allMappers[id] = ctor
}

// Get returns a Mapper initialized against rom, or an error if the
// ROM's mapper id isn't implemented.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	ctor, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unsupported mapper id %d", id)
	}

	m := ctor()
	m.Init(rom)
	return m, nil
}

// baseMapper supplies the bookkeeping shared by every mapper chip:
// its id, name, and backing ROM.
type baseMapper struct {
	id   uint16
	name string
	rom  *nesrom.ROM
}

func (bm *baseMapper) ID() uint16 {
	return bm.id
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
}

func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
