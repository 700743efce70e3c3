// Package render composites a PPU's render-relevant memory into a
// displayable frame. It is stateless: every call takes a fresh
// snapshot and produces a fresh framebuffer.
package render

import (
	"image/color"

	"github.com/kdelgado/nescore/ppu"
)

const (
	width  = 256
	height = 240
)

// Frame composites the background and sprite layers described by
// view into a width*height slice of RGBA pixels, in row-major order.
// Sprites draw on top of the background, honoring their flip bits and
// treating palette index 0 as transparent; background palette index 0
// uses the universal backdrop color.
func Frame(view ppu.RenderView) []color.RGBA {
	frame := make([]color.RGBA, width*height)

	drawBackground(frame, view)
	drawSprites(frame, view)

	return frame
}

func bgPatternBank(ctrl uint8) int {
	if ctrl&0x10 != 0 {
		return 0x1000
	}
	return 0x0000
}

func spritePatternBank(ctrl uint8) int {
	if ctrl&0x08 != 0 {
		return 0x1000
	}
	return 0x0000
}

// mirrorNTIndex maps a nametable-relative address to a VRAM index
// using the cartridge's mirroring mode, duplicating the PPU's own
// mirroring rule since the renderer works from a read-only snapshot.
func mirrorNTIndex(addr uint16, mirrorMode uint8) uint16 {
	i := addr - 0x2000
	q := i / 0x400
	if mirrorMode == ppu.MirrorVertical {
		if q >= 2 {
			return i - 0x800
		}
		return i
	}
	switch q {
	case 0:
		return i
	case 1, 2:
		return i - 0x400
	default:
		return i - 0x800
	}
}

func tilePixel(chr []uint8, bank int, tile int, col, row int) uint8 {
	if len(chr) == 0 {
		return 0
	}
	base := bank + tile*16
	if base+row+8 >= len(chr) {
		return 0
	}
	lo := chr[base+row]
	hi := chr[base+row+8]
	shift := 7 - col
	return ((hi>>shift)&1)<<1 | ((lo >> shift) & 1)
}

func paletteColor(view ppu.RenderView, set uint8, idx uint8) color.RGBA {
	if idx == 0 {
		return ppu.SystemPalette[view.Palette[0]&0x3F]
	}
	i := set*4 + idx
	return ppu.SystemPalette[view.Palette[i]&0x3F]
}

// backgroundNametable resolves which of the four logical nametables a
// scrolled pixel falls in: crossing the 256-pixel width wraps into the
// horizontally adjacent table, flipping the select's low bit; crossing
// the 240-pixel height wraps into the vertically adjacent table,
// flipping the high bit. This is the two-nametable composition spec.md
// §4.4 describes — a single scrolled frame can sample both the base
// nametable PPUCTRL names and its neighbor.
func backgroundNametable(ctrl uint8, totalX, totalY int) (nt uint16, srcX, srcY int) {
	ntX := ctrl & 0x01
	ntY := (ctrl >> 1) & 0x01

	srcX = totalX
	if totalX >= width {
		ntX ^= 1
		srcX = totalX - width
	}
	srcY = totalY
	if totalY >= height {
		ntY ^= 1
		srcY = totalY - height
	}

	nt = 0x2000 + uint16(ntY)*0x800 + uint16(ntX)*0x400
	return nt, srcX, srcY
}

func drawBackground(frame []color.RGBA, view ppu.RenderView) {
	bank := bgPatternBank(view.Ctrl)

	for y := 0; y < height; y++ {
		totalY := y + int(view.ScrollY)
		for x := 0; x < width; x++ {
			totalX := x + int(view.ScrollX)

			nt, srcX, srcY := backgroundNametable(view.Ctrl, totalX, totalY)
			tileCol := srcX / 8
			tileRow := srcY / 8
			ntIndex := mirrorNTIndex(nt, view.MirrorMode)
			tileIdx := int(view.VRAM[ntIndex+uint16(tileRow*32+tileCol)])

			attrBase := ntIndex + 0x3C0
			attrIdx := (tileRow/4)*8 + tileCol/4
			attr := view.VRAM[attrBase+uint16(attrIdx)]
			quadrant := (tileRow%4)/2*2 + (tileCol%4)/2
			paletteSet := (attr >> (quadrant * 2)) & 0x03

			px := tilePixel(view.CHR, bank, tileIdx, srcX%8, srcY%8)
			frame[y*width+x] = paletteColor(view, paletteSet, px)
		}
	}
}

func drawSprites(frame []color.RGBA, view ppu.RenderView) {
	if view.Mask&0x10 == 0 {
		return
	}
	bank := spritePatternBank(view.Ctrl)

	// Sprite 0 is highest priority among equal-position sprites on
	// real hardware sprite evaluation; iterate in reverse so earlier
	// OAM entries draw last and therefore win on overlap.
	for s := 63; s >= 0; s-- {
		base := s * 4
		y := int(view.OAM[base])
		tile := int(view.OAM[base+1])
		attr := view.OAM[base+2]
		x := int(view.OAM[base+3])

		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0
		paletteSet := (attr & 0x03) + 4

		for row := 0; row < 8; row++ {
			py := y + row
			if py < 0 || py >= height {
				continue
			}
			srcRow := row
			if flipV {
				srcRow = 7 - row
			}
			for col := 0; col < 8; col++ {
				px := x + col
				if px < 0 || px >= width {
					continue
				}
				srcCol := col
				if flipH {
					srcCol = 7 - col
				}

				idx := tilePixel(view.CHR, bank, tile, srcCol, srcRow)
				if idx == 0 {
					continue // transparent
				}
				frame[py*width+px] = paletteColor(view, paletteSet, idx)
			}
		}
	}
}
