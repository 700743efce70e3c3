package nesrom

import "testing"

func buildImage(prgBanks, chrBanks int, flags6 byte, trainer bool) []byte {
	data := make([]byte, 16)
	copy(data[0:4], magic[:])
	data[4] = byte(prgBanks)
	data[5] = byte(chrBanks)
	data[6] = flags6
	data[8] = 1

	if trainer {
		data = append(data, make([]byte, trainerSize)...)
	}
	prg := make([]byte, prgBanks*prgBankSize)
	for i := range prg {
		prg[i] = byte(i)
	}
	data = append(data, prg...)

	chr := make([]byte, chrBanks*chrBankSize)
	for i := range chr {
		chr[i] = byte(i + 1)
	}
	data = append(data, chr...)

	return data
}

func TestNewBadMagic(t *testing.T) {
	data := buildImage(1, 1, 0, false)
	data[0] = 0x00
	if _, err := New(data); err == nil {
		t.Fatal("expected error for bad magic, got nil")
	}
}

func TestNewTruncated(t *testing.T) {
	if _, err := New([]byte{0x4E, 0x45}); err == nil {
		t.Fatal("expected error for truncated header, got nil")
	}
}

func TestNewUnsupportedMapper(t *testing.T) {
	// Mapper nibble in the high bits of flags6 set to 1 (MMC1).
	data := buildImage(1, 1, 0x10, false)
	if _, err := New(data); err == nil {
		t.Fatal("expected error for unsupported mapper, got nil")
	}
}

func TestNewMirroring(t *testing.T) {
	data := buildImage(1, 1, 0x00, false)
	rom, err := New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if rom.MirroringMode() != 0 {
		t.Errorf("MirroringMode() = %d, want 0 (horizontal)", rom.MirroringMode())
	}

	data = buildImage(1, 1, 0x01, false)
	rom, err = New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if rom.MirroringMode() != 1 {
		t.Errorf("MirroringMode() = %d, want 1 (vertical)", rom.MirroringMode())
	}
}

func TestNewTrainerOffset(t *testing.T) {
	data := buildImage(1, 1, 0x04, true)
	rom, err := New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if rom.PrgRead(0x8000) != 0 {
		t.Errorf("PrgRead(0x8000) = %d, want 0", rom.PrgRead(0x8000))
	}
	if rom.PrgRead(0x8001) != 1 {
		t.Errorf("PrgRead(0x8001) = %d, want 1", rom.PrgRead(0x8001))
	}
}

func TestPrgReadFolding16K(t *testing.T) {
	data := buildImage(1, 1, 0, false)
	rom, err := New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	// 16 KiB PRG-ROM folds modulo 0x4000.
	if rom.PrgRead(0x8000) != rom.PrgRead(0xC000) {
		t.Errorf("PrgRead(0x8000)=%d != PrgRead(0xC000)=%d, want folding", rom.PrgRead(0x8000), rom.PrgRead(0xC000))
	}
}

func TestPrgReadNoFolding32K(t *testing.T) {
	data := buildImage(2, 1, 0, false)
	// Give the second bank a distinct first byte so folding would be visible.
	data[headerSize+prgBankSize] = 0xAA
	rom, err := New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if rom.PrgSize() != 0x8000 {
		t.Fatalf("PrgSize() = %#x, want 0x8000", rom.PrgSize())
	}
	if got := rom.PrgRead(0x8000); got != 0 {
		t.Errorf("PrgRead(0x8000) = %#02x, want 0x00 (first bank)", got)
	}
	if got := rom.PrgRead(0xC000); got != 0xAA {
		t.Errorf("PrgRead(0xC000) = %#02x, want 0xAA (second bank, no folding)", got)
	}
}

func TestChrSizeZeroReadsZero(t *testing.T) {
	data := buildImage(1, 0, 0, false)
	rom, err := New(data)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if rom.ChrSize() != 0 {
		t.Fatalf("ChrSize() = %d, want 0", rom.ChrSize())
	}
	if rom.ChrRead(0x0000) != 0 {
		t.Errorf("ChrRead with no CHR-ROM = %d, want 0", rom.ChrRead(0x0000))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/rom.nes"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
