package mappers

import (
	"testing"

	"github.com/kdelgado/nescore/nesrom"
)

func romFixture(t *testing.T, prgBanks, chrBanks int) *nesrom.ROM {
	t.Helper()

	data := make([]byte, 16)
	copy(data[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	data[4] = byte(prgBanks)
	data[5] = byte(chrBanks)
	data[8] = 1

	prg := make([]byte, prgBanks*16*1024)
	for i := range prg {
		prg[i] = byte(i)
	}
	data = append(data, prg...)

	chr := make([]byte, chrBanks*8*1024)
	for i := range chr {
		chr[i] = byte(0xFF - i)
	}
	data = append(data, chr...)

	rom, err := nesrom.New(data)
	if err != nil {
		t.Fatalf("nesrom.New() err = %v", err)
	}
	return rom
}

func TestMapper0Get(t *testing.T) {
	rom := romFixture(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if m.ID() != 0 {
		t.Errorf("ID() = %d, want 0", m.ID())
	}
	if m.Name() != "NROM" {
		t.Errorf("Name() = %q, want NROM", m.Name())
	}
}

func TestMapper0PrgFolding16K(t *testing.T) {
	rom := romFixture(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}

	if got, want := m.PrgRead(0x8000), uint8(0); got != want {
		t.Errorf("PrgRead(0x8000) = %d, want %d", got, want)
	}
	if got, want := m.PrgRead(0xC000), uint8(0); got != want {
		t.Errorf("PrgRead(0xC000) = %d, want %d (16K image folds)", got, want)
	}
}

func TestMapper0ChrRead(t *testing.T) {
	rom := romFixture(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}

	if got, want := m.ChrRead(0x0000), uint8(0xFF); got != want {
		t.Errorf("ChrRead(0x0000) = %#x, want %#x", got, want)
	}
}

func TestMapper0ChrWriteIsNoOp(t *testing.T) {
	rom := romFixture(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}

	before := m.ChrRead(0x0010)
	m.ChrWrite(0x0010, 0xAB)
	if after := m.ChrRead(0x0010); after != before {
		t.Errorf("ChrWrite mutated read-only CHR-ROM: before=%#x after=%#x", before, after)
	}
}
