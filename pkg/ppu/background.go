package ppu

// loadBackgroundShifters merges the latched next-tile bytes into the low
// half of each shifter; the high half holds the 8 pixels currently
// being shifted out. Called every 8th background-fetch cycle.
func (p *PPU) loadBackgroundShifters() {
	p.bgShifterPatternLo = (p.bgShifterPatternLo & 0xFF00) | uint16(p.bgNextTileLSB)
	p.bgShifterPatternHi = (p.bgShifterPatternHi & 0xFF00) | uint16(p.bgNextTileMSB)

	if p.bgNextTileAttrib&0x01 != 0 {
		p.bgShifterAttribLo = (p.bgShifterAttribLo & 0xFF00) | 0x00FF
	} else {
		p.bgShifterAttribLo = p.bgShifterAttribLo & 0xFF00
	}
	if p.bgNextTileAttrib&0x02 != 0 {
		p.bgShifterAttribHi = (p.bgShifterAttribHi & 0xFF00) | 0x00FF
	} else {
		p.bgShifterAttribHi = p.bgShifterAttribHi & 0xFF00
	}
}

// updateShifters advances the background shifters by one pixel; called
// every dot background fetching is active.
func (p *PPU) updateShifters() {
	if p.mask.RenderBackground() {
		p.bgShifterPatternLo <<= 1
		p.bgShifterPatternHi <<= 1
		p.bgShifterAttribLo <<= 1
		p.bgShifterAttribHi <<= 1
	}
}

// backgroundFetchCycle runs one step of the 8-cycle NT/AT/PT-lo/PT-hi
// fetch chain, dispatched by (cycle-1)%8 exactly as the hardware's
// fetch unit does.
func (p *PPU) backgroundFetchCycle(phase uint16) {
	renderingEnabled := p.mask.IsRenderingEnabled()

	switch phase {
	case 0:
		p.loadBackgroundShifters()
		p.bgNextTileID = p.vbus.Read(0x2000|(p.v.Get()&0x0FFF), renderingEnabled)

	case 2:
		address := uint16(0x23C0) |
			(p.v.NametableY() << 11) |
			(p.v.NametableX() << 10) |
			((p.v.CoarseY() >> 2) << 3) |
			(p.v.CoarseX() >> 2)

		p.bgNextTileAttrib = p.vbus.Read(address, renderingEnabled)
		if p.v.CoarseY()&0x02 != 0 {
			p.bgNextTileAttrib >>= 4
		}
		if p.v.CoarseX()&0x02 != 0 {
			p.bgNextTileAttrib >>= 2
		}
		p.bgNextTileAttrib &= 0x03

	case 4:
		table := p.control.BackgroundPatternTable()
		address := table | (uint16(p.bgNextTileID) << 4) | p.v.FineY()
		p.bgNextTileLSB = p.vbus.Read(address, renderingEnabled)

	case 6:
		table := p.control.BackgroundPatternTable()
		address := table | (uint16(p.bgNextTileID) << 4) | p.v.FineY()
		p.bgNextTileMSB = p.vbus.Read(address+8, renderingEnabled)

	case 7:
		if p.mask.IsRenderingEnabled() {
			p.v.IncrementX()
		}
	}
}

// backgroundPixel returns the 2-bit pixel value and 2-bit palette
// selector the shifters currently hold for the fine-X-selected bit at
// screen column x.
func (p *PPU) backgroundPixel(x uint16) (pixel, palette uint8) {
	if !p.mask.RenderBackground() {
		return 0, 0
	}
	if x < 8 && !p.mask.RenderBackgroundLeft() {
		return 0, 0
	}

	bitMux := uint16(0x8000 >> p.fineX)

	p0 := uint8(0)
	if p.bgShifterPatternLo&bitMux != 0 {
		p0 = 1
	}
	p1 := uint8(0)
	if p.bgShifterPatternHi&bitMux != 0 {
		p1 = 1
	}
	pixel = (p1 << 1) | p0

	pal0 := uint8(0)
	if p.bgShifterAttribLo&bitMux != 0 {
		pal0 = 1
	}
	pal1 := uint8(0)
	if p.bgShifterAttribHi&bitMux != 0 {
		pal1 = 1
	}
	palette = (pal1 << 1) | pal0
	return pixel, palette
}
