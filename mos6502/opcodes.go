package mos6502

// addrMode identifies one of the thirteen 6502 addressing modes
// (counting Implied).
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// opcode is one row of the decode table: a mnemonic's name (for
// debugging/disassembly), its addressing mode, instruction length in
// bytes, base cycle count, and the function that carries out its
// effect.
type opcode struct {
	name   string
	mode   addrMode
	bytes  uint8
	cycles uint8
	exec   func(*CPU, addrMode)
}

// operandAddress resolves mode to an effective address, consuming
// whatever operand bytes the mode requires from the instruction
// stream. It is not meaningful for Implied, Accumulator, or
// Immediate, which callers handle through operandValue instead.
func (c *CPU) operandAddress(mode addrMode) uint16 {
	switch mode {
	case modeZeroPage:
		return uint16(c.fetchByte())
	case modeZeroPageX:
		return uint16(c.fetchByte()+c.X) & 0xFF
	case modeZeroPageY:
		return uint16(c.fetchByte()+c.Y) & 0xFF
	case modeAbsolute:
		return c.fetchWord()
	case modeAbsoluteX:
		return c.fetchWord() + uint16(c.X)
	case modeAbsoluteY:
		return c.fetchWord() + uint16(c.Y)
	case modeIndirect:
		ptr := c.fetchWord()
		var lo, hi uint8
		if ptr&0x00FF == 0x00FF {
			// Reproduce the 6502 page-boundary bug: the high byte wraps
			// within the same page instead of crossing into the next one.
			lo = c.bus.Read(ptr)
			hi = c.bus.Read(ptr & 0xFF00)
		} else {
			lo = c.bus.Read(ptr)
			hi = c.bus.Read(ptr + 1)
		}
		return uint16(hi)<<8 | uint16(lo)
	case modeIndirectX:
		zp := (c.fetchByte() + c.X) & 0xFF
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16((zp + 1) & 0xFF))
		return uint16(hi)<<8 | uint16(lo)
	case modeIndirectY:
		zp := c.fetchByte()
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16((zp + 1) & 0xFF))
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.Y)
	case modeRelative:
		offset := int8(c.fetchByte())
		return uint16(int32(c.PC) + int32(offset))
	default:
		panic("mos6502: operandAddress called with a mode that has no address")
	}
}

// operandValue resolves mode to the 8-bit operand it denotes.
func (c *CPU) operandValue(mode addrMode) uint8 {
	switch mode {
	case modeImmediate:
		return c.fetchByte()
	case modeAccumulator:
		return c.A
	default:
		return c.bus.Read(c.operandAddress(mode))
	}
}

func (c *CPU) lda(mode addrMode) { c.A = c.operandValue(mode); c.setZN(c.A) }
func (c *CPU) ldx(mode addrMode) { c.X = c.operandValue(mode); c.setZN(c.X) }
func (c *CPU) ldy(mode addrMode) { c.Y = c.operandValue(mode); c.setZN(c.Y) }

func (c *CPU) sta(mode addrMode) { c.bus.Write(c.operandAddress(mode), c.A) }
func (c *CPU) stx(mode addrMode) { c.bus.Write(c.operandAddress(mode), c.X) }
func (c *CPU) sty(mode addrMode) { c.bus.Write(c.operandAddress(mode), c.Y) }

func (c *CPU) addWithCarry(m uint8) {
	a := c.A
	carry := uint16(0)
	if c.flag(FlagC) {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	result := uint8(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (m^result)&(a^result)&0x80 != 0)
	c.setZN(result)
	c.A = result
}

func (c *CPU) adc(mode addrMode) { c.addWithCarry(c.operandValue(mode)) }

// sbc is implemented as adc with the operand ones-complemented, which
// reproduces the same borrow/overflow arithmetic as the native 6502
// SBC opcode using a single adder.
func (c *CPU) sbc(mode addrMode) { c.addWithCarry(^c.operandValue(mode)) }

func (c *CPU) and(mode addrMode) { c.A &= c.operandValue(mode); c.setZN(c.A) }
func (c *CPU) ora(mode addrMode) { c.A |= c.operandValue(mode); c.setZN(c.A) }
func (c *CPU) eor(mode addrMode) { c.A ^= c.operandValue(mode); c.setZN(c.A) }

func (c *CPU) asl(mode addrMode) {
	if mode == modeAccumulator {
		carry := c.A&0x80 != 0
		c.A <<= 1
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr)
	carry := v&0x80 != 0
	v <<= 1
	c.bus.Write(addr, v)
	c.setFlag(FlagC, carry)
	c.setZN(v)
}

func (c *CPU) lsr(mode addrMode) {
	if mode == modeAccumulator {
		carry := c.A&0x01 != 0
		c.A >>= 1
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr)
	carry := v&0x01 != 0
	v >>= 1
	c.bus.Write(addr, v)
	c.setFlag(FlagC, carry)
	c.setZN(v)
}

func (c *CPU) rol(mode addrMode) {
	oldCarry := uint8(0)
	if c.flag(FlagC) {
		oldCarry = 1
	}
	if mode == modeAccumulator {
		carry := c.A&0x80 != 0
		c.A = (c.A << 1) | oldCarry
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr)
	carry := v&0x80 != 0
	v = (v << 1) | oldCarry
	c.bus.Write(addr, v)
	c.setFlag(FlagC, carry)
	c.setZN(v)
}

func (c *CPU) ror(mode addrMode) {
	oldCarry := uint8(0)
	if c.flag(FlagC) {
		oldCarry = 0x80
	}
	if mode == modeAccumulator {
		carry := c.A&0x01 != 0
		c.A = (c.A >> 1) | oldCarry
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr)
	carry := v&0x01 != 0
	v = (v >> 1) | oldCarry
	c.bus.Write(addr, v)
	c.setFlag(FlagC, carry)
	c.setZN(v)
}

func (c *CPU) inc(mode addrMode) {
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) dec(mode addrMode) {
	addr := c.operandAddress(mode)
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) inx(addrMode) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(addrMode) { c.Y++; c.setZN(c.Y) }
func (c *CPU) dex(addrMode) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(addrMode) { c.Y--; c.setZN(c.Y) }

func (c *CPU) bit(mode addrMode) {
	m := c.operandValue(mode)
	c.setFlag(FlagZ, c.A&m == 0)
	c.setFlag(FlagN, m&0x80 != 0)
	c.setFlag(FlagV, m&0x40 != 0)
}

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagC, reg >= m)
	c.setZN(reg - m)
}

func (c *CPU) cmp(mode addrMode) { c.compare(c.A, c.operandValue(mode)) }
func (c *CPU) cpx(mode addrMode) { c.compare(c.X, c.operandValue(mode)) }
func (c *CPU) cpy(mode addrMode) { c.compare(c.Y, c.operandValue(mode)) }

func (c *CPU) branch(mode addrMode, cond bool) {
	target := c.operandAddress(mode)
	if cond {
		c.PC = target
	}
}

func (c *CPU) bcc(mode addrMode) { c.branch(mode, !c.flag(FlagC)) }
func (c *CPU) bcs(mode addrMode) { c.branch(mode, c.flag(FlagC)) }
func (c *CPU) bne(mode addrMode) { c.branch(mode, !c.flag(FlagZ)) }
func (c *CPU) beq(mode addrMode) { c.branch(mode, c.flag(FlagZ)) }
func (c *CPU) bpl(mode addrMode) { c.branch(mode, !c.flag(FlagN)) }
func (c *CPU) bmi(mode addrMode) { c.branch(mode, c.flag(FlagN)) }
func (c *CPU) bvc(mode addrMode) { c.branch(mode, !c.flag(FlagV)) }
func (c *CPU) bvs(mode addrMode) { c.branch(mode, c.flag(FlagV)) }

func (c *CPU) jmp(mode addrMode) { c.PC = c.operandAddress(mode) }

func (c *CPU) jsr(mode addrMode) {
	target := c.operandAddress(mode)
	c.push16(c.PC - 1)
	c.PC = target
}

func (c *CPU) rts(addrMode) { c.PC = c.pop16() + 1 }

func (c *CPU) rti(addrMode) {
	p := c.pop8()
	p &^= FlagB
	p |= FlagU
	c.P = p
	c.PC = c.pop16()
}

func (c *CPU) clc(addrMode) { c.setFlag(FlagC, false) }
func (c *CPU) sec(addrMode) { c.setFlag(FlagC, true) }
func (c *CPU) cli(addrMode) { c.setFlag(FlagI, false) }
func (c *CPU) sei(addrMode) { c.setFlag(FlagI, true) }
func (c *CPU) clv(addrMode) { c.setFlag(FlagV, false) }
func (c *CPU) cld(addrMode) { c.setFlag(FlagD, false) }
func (c *CPU) sed(addrMode) { c.setFlag(FlagD, true) }

func (c *CPU) tax(addrMode) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(addrMode) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) tsx(addrMode) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txa(addrMode) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) tya(addrMode) { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) txs(addrMode) { c.SP = c.X }

func (c *CPU) pha(addrMode) { c.push8(c.A) }
func (c *CPU) php(addrMode) { c.push8(c.P | FlagB | FlagU) }
func (c *CPU) pla(addrMode) { c.A = c.pop8(); c.setZN(c.A) }
func (c *CPU) plp(addrMode) {
	v := c.pop8()
	v &^= FlagB
	v |= FlagU
	c.P = v
}

// brk behaves as a software NMI entry: the same push-PC/push-P/
// set-I/load-vector shape, reading the BRK/IRQ vector at 0xFFFE
// instead of the NMI vector, with the padding byte following the
// opcode skipped and B forced into the pushed status copy.
func (c *CPU) brk(addrMode) {
	c.PC++
	c.push16(c.PC)
	c.push8(c.P | FlagB | FlagU)
	c.setFlag(FlagI, true)
	c.PC = c.read16(0xFFFE)
}

func (c *CPU) kil(addrMode) {
	panic("mos6502: KIL opcode executed, CPU halted")
}

func (c *CPU) nop(addrMode) {}

var opcodeTable = map[uint8]opcode{
	0x69: {"ADC", modeImmediate, 2, 2, (*CPU).adc},
	0x65: {"ADC", modeZeroPage, 2, 3, (*CPU).adc},
	0x75: {"ADC", modeZeroPageX, 2, 4, (*CPU).adc},
	0x6D: {"ADC", modeAbsolute, 3, 4, (*CPU).adc},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, (*CPU).adc},
	0x79: {"ADC", modeAbsoluteY, 3, 4, (*CPU).adc},
	0x61: {"ADC", modeIndirectX, 2, 6, (*CPU).adc},
	0x71: {"ADC", modeIndirectY, 2, 5, (*CPU).adc},

	0x29: {"AND", modeImmediate, 2, 2, (*CPU).and},
	0x25: {"AND", modeZeroPage, 2, 3, (*CPU).and},
	0x35: {"AND", modeZeroPageX, 2, 4, (*CPU).and},
	0x2D: {"AND", modeAbsolute, 3, 4, (*CPU).and},
	0x3D: {"AND", modeAbsoluteX, 3, 4, (*CPU).and},
	0x39: {"AND", modeAbsoluteY, 3, 4, (*CPU).and},
	0x21: {"AND", modeIndirectX, 2, 6, (*CPU).and},
	0x31: {"AND", modeIndirectY, 2, 5, (*CPU).and},

	0x0A: {"ASL", modeAccumulator, 1, 2, (*CPU).asl},
	0x06: {"ASL", modeZeroPage, 2, 5, (*CPU).asl},
	0x16: {"ASL", modeZeroPageX, 2, 6, (*CPU).asl},
	0x0E: {"ASL", modeAbsolute, 3, 6, (*CPU).asl},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, (*CPU).asl},

	0x90: {"BCC", modeRelative, 2, 2, (*CPU).bcc},
	0xB0: {"BCS", modeRelative, 2, 2, (*CPU).bcs},
	0xF0: {"BEQ", modeRelative, 2, 2, (*CPU).beq},

	0x24: {"BIT", modeZeroPage, 2, 3, (*CPU).bit},
	0x2C: {"BIT", modeAbsolute, 3, 4, (*CPU).bit},

	0x30: {"BMI", modeRelative, 2, 2, (*CPU).bmi},
	0xD0: {"BNE", modeRelative, 2, 2, (*CPU).bne},
	0x10: {"BPL", modeRelative, 2, 2, (*CPU).bpl},

	0x00: {"BRK", modeImplied, 1, 7, (*CPU).brk},

	0x50: {"BVC", modeRelative, 2, 2, (*CPU).bvc},
	0x70: {"BVS", modeRelative, 2, 2, (*CPU).bvs},

	0x18: {"CLC", modeImplied, 1, 2, (*CPU).clc},
	0xD8: {"CLD", modeImplied, 1, 2, (*CPU).cld},
	0x58: {"CLI", modeImplied, 1, 2, (*CPU).cli},
	0xB8: {"CLV", modeImplied, 1, 2, (*CPU).clv},

	0xC9: {"CMP", modeImmediate, 2, 2, (*CPU).cmp},
	0xC5: {"CMP", modeZeroPage, 2, 3, (*CPU).cmp},
	0xD5: {"CMP", modeZeroPageX, 2, 4, (*CPU).cmp},
	0xCD: {"CMP", modeAbsolute, 3, 4, (*CPU).cmp},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, (*CPU).cmp},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, (*CPU).cmp},
	0xC1: {"CMP", modeIndirectX, 2, 6, (*CPU).cmp},
	0xD1: {"CMP", modeIndirectY, 2, 5, (*CPU).cmp},

	0xE0: {"CPX", modeImmediate, 2, 2, (*CPU).cpx},
	0xE4: {"CPX", modeZeroPage, 2, 3, (*CPU).cpx},
	0xEC: {"CPX", modeAbsolute, 3, 4, (*CPU).cpx},

	0xC0: {"CPY", modeImmediate, 2, 2, (*CPU).cpy},
	0xC4: {"CPY", modeZeroPage, 2, 3, (*CPU).cpy},
	0xCC: {"CPY", modeAbsolute, 3, 4, (*CPU).cpy},

	0xC6: {"DEC", modeZeroPage, 2, 5, (*CPU).dec},
	0xD6: {"DEC", modeZeroPageX, 2, 6, (*CPU).dec},
	0xCE: {"DEC", modeAbsolute, 3, 6, (*CPU).dec},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, (*CPU).dec},

	0xCA: {"DEX", modeImplied, 1, 2, (*CPU).dex},
	0x88: {"DEY", modeImplied, 1, 2, (*CPU).dey},

	0x49: {"EOR", modeImmediate, 2, 2, (*CPU).eor},
	0x45: {"EOR", modeZeroPage, 2, 3, (*CPU).eor},
	0x55: {"EOR", modeZeroPageX, 2, 4, (*CPU).eor},
	0x4D: {"EOR", modeAbsolute, 3, 4, (*CPU).eor},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, (*CPU).eor},
	0x59: {"EOR", modeAbsoluteY, 3, 4, (*CPU).eor},
	0x41: {"EOR", modeIndirectX, 2, 6, (*CPU).eor},
	0x51: {"EOR", modeIndirectY, 2, 5, (*CPU).eor},

	0xE6: {"INC", modeZeroPage, 2, 5, (*CPU).inc},
	0xF6: {"INC", modeZeroPageX, 2, 6, (*CPU).inc},
	0xEE: {"INC", modeAbsolute, 3, 6, (*CPU).inc},
	0xFE: {"INC", modeAbsoluteX, 3, 7, (*CPU).inc},

	0xE8: {"INX", modeImplied, 1, 2, (*CPU).inx},
	0xC8: {"INY", modeImplied, 1, 2, (*CPU).iny},

	0x4C: {"JMP", modeAbsolute, 3, 3, (*CPU).jmp},
	0x6C: {"JMP", modeIndirect, 3, 5, (*CPU).jmp},

	0x20: {"JSR", modeAbsolute, 3, 6, (*CPU).jsr},

	0xA9: {"LDA", modeImmediate, 2, 2, (*CPU).lda},
	0xA5: {"LDA", modeZeroPage, 2, 3, (*CPU).lda},
	0xB5: {"LDA", modeZeroPageX, 2, 4, (*CPU).lda},
	0xAD: {"LDA", modeAbsolute, 3, 4, (*CPU).lda},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, (*CPU).lda},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, (*CPU).lda},
	0xA1: {"LDA", modeIndirectX, 2, 6, (*CPU).lda},
	0xB1: {"LDA", modeIndirectY, 2, 5, (*CPU).lda},

	0xA2: {"LDX", modeImmediate, 2, 2, (*CPU).ldx},
	0xA6: {"LDX", modeZeroPage, 2, 3, (*CPU).ldx},
	0xB6: {"LDX", modeZeroPageY, 2, 4, (*CPU).ldx},
	0xAE: {"LDX", modeAbsolute, 3, 4, (*CPU).ldx},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, (*CPU).ldx},

	0xA0: {"LDY", modeImmediate, 2, 2, (*CPU).ldy},
	0xA4: {"LDY", modeZeroPage, 2, 3, (*CPU).ldy},
	0xB4: {"LDY", modeZeroPageX, 2, 4, (*CPU).ldy},
	0xAC: {"LDY", modeAbsolute, 3, 4, (*CPU).ldy},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, (*CPU).ldy},

	0x4A: {"LSR", modeAccumulator, 1, 2, (*CPU).lsr},
	0x46: {"LSR", modeZeroPage, 2, 5, (*CPU).lsr},
	0x56: {"LSR", modeZeroPageX, 2, 6, (*CPU).lsr},
	0x4E: {"LSR", modeAbsolute, 3, 6, (*CPU).lsr},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, (*CPU).lsr},

	0xEA: {"NOP", modeImplied, 1, 2, (*CPU).nop},

	0x09: {"ORA", modeImmediate, 2, 2, (*CPU).ora},
	0x05: {"ORA", modeZeroPage, 2, 3, (*CPU).ora},
	0x15: {"ORA", modeZeroPageX, 2, 4, (*CPU).ora},
	0x0D: {"ORA", modeAbsolute, 3, 4, (*CPU).ora},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, (*CPU).ora},
	0x19: {"ORA", modeAbsoluteY, 3, 4, (*CPU).ora},
	0x01: {"ORA", modeIndirectX, 2, 6, (*CPU).ora},
	0x11: {"ORA", modeIndirectY, 2, 5, (*CPU).ora},

	0x48: {"PHA", modeImplied, 1, 3, (*CPU).pha},
	0x08: {"PHP", modeImplied, 1, 3, (*CPU).php},
	0x68: {"PLA", modeImplied, 1, 4, (*CPU).pla},
	0x28: {"PLP", modeImplied, 1, 4, (*CPU).plp},

	0x2A: {"ROL", modeAccumulator, 1, 2, (*CPU).rol},
	0x26: {"ROL", modeZeroPage, 2, 5, (*CPU).rol},
	0x36: {"ROL", modeZeroPageX, 2, 6, (*CPU).rol},
	0x2E: {"ROL", modeAbsolute, 3, 6, (*CPU).rol},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, (*CPU).rol},

	0x6A: {"ROR", modeAccumulator, 1, 2, (*CPU).ror},
	0x66: {"ROR", modeZeroPage, 2, 5, (*CPU).ror},
	0x76: {"ROR", modeZeroPageX, 2, 6, (*CPU).ror},
	0x6E: {"ROR", modeAbsolute, 3, 6, (*CPU).ror},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, (*CPU).ror},

	0x40: {"RTI", modeImplied, 1, 6, (*CPU).rti},
	0x60: {"RTS", modeImplied, 1, 6, (*CPU).rts},

	0xE9: {"SBC", modeImmediate, 2, 2, (*CPU).sbc},
	0xE5: {"SBC", modeZeroPage, 2, 3, (*CPU).sbc},
	0xF5: {"SBC", modeZeroPageX, 2, 4, (*CPU).sbc},
	0xED: {"SBC", modeAbsolute, 3, 4, (*CPU).sbc},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, (*CPU).sbc},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, (*CPU).sbc},
	0xE1: {"SBC", modeIndirectX, 2, 6, (*CPU).sbc},
	0xF1: {"SBC", modeIndirectY, 2, 5, (*CPU).sbc},

	0x38: {"SEC", modeImplied, 1, 2, (*CPU).sec},
	0xF8: {"SED", modeImplied, 1, 2, (*CPU).sed},
	0x78: {"SEI", modeImplied, 1, 2, (*CPU).sei},

	0x85: {"STA", modeZeroPage, 2, 3, (*CPU).sta},
	0x95: {"STA", modeZeroPageX, 2, 4, (*CPU).sta},
	0x8D: {"STA", modeAbsolute, 3, 4, (*CPU).sta},
	0x9D: {"STA", modeAbsoluteX, 3, 5, (*CPU).sta},
	0x99: {"STA", modeAbsoluteY, 3, 5, (*CPU).sta},
	0x81: {"STA", modeIndirectX, 2, 6, (*CPU).sta},
	0x91: {"STA", modeIndirectY, 2, 6, (*CPU).sta},

	0x86: {"STX", modeZeroPage, 2, 3, (*CPU).stx},
	0x96: {"STX", modeZeroPageY, 2, 4, (*CPU).stx},
	0x8E: {"STX", modeAbsolute, 3, 4, (*CPU).stx},

	0x84: {"STY", modeZeroPage, 2, 3, (*CPU).sty},
	0x94: {"STY", modeZeroPageX, 2, 4, (*CPU).sty},
	0x8C: {"STY", modeAbsolute, 3, 4, (*CPU).sty},

	0xAA: {"TAX", modeImplied, 1, 2, (*CPU).tax},
	0xA8: {"TAY", modeImplied, 1, 2, (*CPU).tay},
	0xBA: {"TSX", modeImplied, 1, 2, (*CPU).tsx},
	0x8A: {"TXA", modeImplied, 1, 2, (*CPU).txa},
	0x9A: {"TXS", modeImplied, 1, 2, (*CPU).txs},
	0x98: {"TYA", modeImplied, 1, 2, (*CPU).tya},

	// Halting (jam) opcodes. The real chip locks the bus permanently;
	// we surface that as a fatal panic instead.
	0x02: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x12: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x22: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x32: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x42: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x52: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x62: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x72: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0x92: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0xB2: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0xD2: {"KIL", modeImplied, 1, 2, (*CPU).kil},
	0xF2: {"KIL", modeImplied, 1, 2, (*CPU).kil},

	// Unofficial multi-form NOPs that guest software (and test ROMs in
	// particular) rely on decoding cleanly rather than jamming.
	0x1A: {"NOP", modeImplied, 1, 2, (*CPU).nop},
	0x3A: {"NOP", modeImplied, 1, 2, (*CPU).nop},
	0x5A: {"NOP", modeImplied, 1, 2, (*CPU).nop},
	0x7A: {"NOP", modeImplied, 1, 2, (*CPU).nop},
	0xDA: {"NOP", modeImplied, 1, 2, (*CPU).nop},
	0xFA: {"NOP", modeImplied, 1, 2, (*CPU).nop},
}
