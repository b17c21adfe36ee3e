package ppu

// reg8 is a plain 8-bit hardware register with bit-level accessors
// shared by PPUCTRL, PPUMASK, and PPUSTATUS; each of those differs only
// in which bits mean what, not in how a bit is read or written.
type reg8 struct {
	v uint8
}

func (r *reg8) Set(value uint8) { r.v = value }
func (r *reg8) Get() uint8      { return r.v }

func (r *reg8) bit(n uint8) bool { return (r.v>>n)&0x01 != 0 }

func (r *reg8) bitVal(n uint8) uint8 {
	if r.bit(n) {
		return 1
	}
	return 0
}

func (r *reg8) setBit(n uint8, on bool) {
	mask := uint8(1) << n
	if on {
		r.v |= mask
	} else {
		r.v &^= mask
	}
}

// PPUControl is PPUCTRL ($2000), write-only: nametable base, VRAM
// address increment step, pattern table selection, sprite size, and
// NMI enable.
//
//	7: NMI enable        5: sprite size      3: sprite pattern table
//	6: master/slave (NC) 4: bg pattern table 2: increment mode
//	1-0: base nametable
type PPUControl struct{ reg8 }

func (c *PPUControl) NametableX() uint8 { return c.bitVal(0) }
func (c *PPUControl) NametableY() uint8 { return c.bitVal(1) }

func (c *PPUControl) IncrementMode() uint16 {
	if c.bit(2) {
		return 32
	}
	return 1
}

func (c *PPUControl) SpritePatternTable() uint16 {
	if c.bit(3) {
		return 0x1000
	}
	return 0x0000
}

func (c *PPUControl) BackgroundPatternTable() uint16 {
	if c.bit(4) {
		return 0x1000
	}
	return 0x0000
}

func (c *PPUControl) SpriteSize() uint8 { return c.bitVal(5) }
func (c *PPUControl) SlaveMode() bool   { return c.bit(6) }
func (c *PPUControl) EnableNMI() bool   { return c.bit(7) }

// PPUMask is PPUMASK ($2001), write-only: grayscale, color emphasis,
// and the four rendering-enable bits this package's scheduler and
// pixel pipeline consult on every dot.
//
//	7-5: emphasize B/G/R  3: show background  1: show bg in left 8px
//	4: show sprites       2: show spr in left 8px  0: grayscale
type PPUMask struct{ reg8 }

func (m *PPUMask) Grayscale() bool            { return m.bit(0) }
func (m *PPUMask) RenderBackgroundLeft() bool { return m.bit(1) }
func (m *PPUMask) RenderSpritesLeft() bool    { return m.bit(2) }
func (m *PPUMask) RenderBackground() bool     { return m.bit(3) }
func (m *PPUMask) RenderSprites() bool        { return m.bit(4) }
func (m *PPUMask) EmphasizeRed() bool         { return m.bit(5) }
func (m *PPUMask) EmphasizeGreen() bool       { return m.bit(6) }
func (m *PPUMask) EmphasizeBlue() bool        { return m.bit(7) }

// IsRenderingEnabled is true whenever either background or sprite
// rendering is on; most of the fetch/evaluation pipeline gates on this
// rather than on the two bits individually.
func (m *PPUMask) IsRenderingEnabled() bool {
	return m.RenderBackground() || m.RenderSprites()
}

// PPUStatus is PPUSTATUS ($2002), read-only: vblank, sprite-0 hit, and
// sprite overflow in bits 7-5; bits 4-0 carry whatever was last on the
// data bus (see ReadRegister in registerfile.go).
type PPUStatus struct{ reg8 }

func (s *PPUStatus) SetVBlank(on bool)         { s.setBit(7, on) }
func (s *PPUStatus) VBlank() bool              { return s.bit(7) }
func (s *PPUStatus) SetSprite0Hit(on bool)     { s.setBit(6, on) }
func (s *PPUStatus) Sprite0Hit() bool          { return s.bit(6) }
func (s *PPUStatus) SetSpriteOverflow(on bool) { s.setBit(5, on) }
func (s *PPUStatus) SpriteOverflow() bool      { return s.bit(5) }

// LoopyRegister is one half (v or t) of the 15-bit scroll/address
// counter pair, named for Loopy's writeup of how the 2C02 actually
// tracks scroll position internally rather than with a flat X/Y pair.
//
//	14-12 fine Y   11-10 nametable select   9-5 coarse Y   4-0 coarse X
type LoopyRegister struct {
	register uint16
}

func (l *LoopyRegister) Set(value uint16) { l.register = value & 0x7FFF }
func (l *LoopyRegister) Get() uint16      { return l.register }

func (l *LoopyRegister) CoarseX() uint16 { return l.register & 0x001F }

func (l *LoopyRegister) SetCoarseX(value uint16) {
	l.register = (l.register & 0x7FE0) | (value & 0x001F)
}

func (l *LoopyRegister) CoarseY() uint16 { return (l.register & 0x03E0) >> 5 }

func (l *LoopyRegister) SetCoarseY(value uint16) {
	l.register = (l.register & 0x7C1F) | ((value & 0x001F) << 5)
}

func (l *LoopyRegister) NametableX() uint16 { return (l.register & 0x0400) >> 10 }

func (l *LoopyRegister) SetNametableX(value uint16) {
	if value != 0 {
		l.register |= 0x0400
	} else {
		l.register &^= 0x0400
	}
}

func (l *LoopyRegister) NametableY() uint16 { return (l.register & 0x0800) >> 11 }

func (l *LoopyRegister) SetNametableY(value uint16) {
	if value != 0 {
		l.register |= 0x0800
	} else {
		l.register &^= 0x0800
	}
}

func (l *LoopyRegister) FineY() uint16 { return (l.register & 0x7000) >> 12 }

func (l *LoopyRegister) SetFineY(value uint16) {
	l.register = (l.register & 0x0FFF) | ((value & 0x0007) << 12)
}

// IncrementX moves one tile right, wrapping coarse X at 32 and flipping
// the horizontal nametable bit on wrap.
func (l *LoopyRegister) IncrementX() {
	if l.CoarseX() == 31 {
		l.SetCoarseX(0)
		l.SetNametableX(l.NametableX() ^ 1)
	} else {
		l.SetCoarseX(l.CoarseX() + 1)
	}
}

// IncrementY moves down one pixel row, carrying into coarse Y (one
// tile row) once fine Y wraps. Coarse Y 30-31 address attribute data
// rather than a real nametable row, so row 29 (the last real row)
// flips the vertical nametable bit on wrap, but row 31 - reachable
// only by writing coarse Y directly rather than by rendering - just
// wraps to 0 without flipping it. Real hardware has this quirk; this
// implementation reproduces it rather than "fixing" it.
func (l *LoopyRegister) IncrementY() {
	if l.FineY() < 7 {
		l.SetFineY(l.FineY() + 1)
		return
	}
	l.SetFineY(0)

	switch y := l.CoarseY(); y {
	case 29:
		l.SetCoarseY(0)
		l.SetNametableY(l.NametableY() ^ 1)
	case 31:
		l.SetCoarseY(0)
	default:
		l.SetCoarseY(y + 1)
	}
}

// TransferX copies coarse X and nametable X from source into l; the
// scheduler calls this at cycle 257 of every rendered scanline to
// reset horizontal position from t into v.
func (l *LoopyRegister) TransferX(source *LoopyRegister) {
	l.register = (l.register & 0x7BE0) | (source.register & 0x041F)
}

// TransferY copies fine Y, nametable Y, and coarse Y from source into
// l; the scheduler calls this during the pre-render line's cycles
// 280-304 to reset vertical position for the new frame.
func (l *LoopyRegister) TransferY(source *LoopyRegister) {
	l.register = (l.register & 0x041F) | (source.register & 0x7BE0)
}
