package ppu

// WriteRegister handles a CPU write to one of the eight PPU registers
// ($2000-$2007), already demirrored by the caller (the CPU bus mirrors
// this window every 8 bytes through $3FFF). Every write - including to
// write-only and nonexistent bits - updates the generation latch, since
// real hardware latches whatever value last appeared on the PPU's data
// bus regardless of which register it targeted.
func (p *PPU) WriteRegister(reg uint8, value uint8) {
	p.genLatch = value

	switch reg & 0x07 {
	case 0x00: // PPUCTRL
		p.control.Set(value)
		p.t.SetNametableX(uint16(p.control.NametableX()))
		p.t.SetNametableY(uint16(p.control.NametableY()))
		p.updateNMILine()

	case 0x01: // PPUMASK
		p.mask.Set(value)

	case 0x03: // OAMADDR
		p.oamAddress = value

	case 0x04: // OAMDATA
		p.oam[p.oamAddress] = value
		p.oamAddress++

	case 0x05: // PPUSCROLL
		if !p.writeLatch {
			p.t.SetCoarseX(uint16(value >> 3))
			p.fineX = value & 0x07
			p.writeLatch = true
		} else {
			p.t.SetFineY(uint16(value & 0x07))
			p.t.SetCoarseY(uint16(value >> 3))
			p.writeLatch = false
		}

	case 0x06: // PPUADDR
		if !p.writeLatch {
			p.t.Set((p.t.Get() & 0x00FF) | ((uint16(value) & 0x3F) << 8))
			p.writeLatch = true
		} else {
			p.t.Set((p.t.Get() & 0xFF00) | uint16(value))
			p.v.Set(p.t.Get())
			p.writeLatch = false
		}

	case 0x07: // PPUDATA
		p.vbus.Write(p.v.Get(), value, p.mask.IsRenderingEnabled())
		p.v.Set(p.v.Get() + p.control.IncrementMode())
	}
}

// ReadRegister handles a CPU read from $2000-$2007. Registers with no
// readable hardware behind them (PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL,
// PPUADDR) return whatever was last latched onto the data bus, matching
// 2C02 open-bus behavior.
func (p *PPU) ReadRegister(reg uint8) uint8 {
	switch reg & 0x07 {
	case 0x02: // PPUSTATUS
		value := (p.status.Get() & 0xE0) | (p.genLatch & 0x1F)
		p.status.SetVBlank(false)
		p.writeLatch = false
		p.genLatch = value
		p.updateNMILine()
		return value

	case 0x04: // OAMDATA
		value := p.oam[p.oamAddress]
		if p.oamAddress&0x03 == 2 {
			value &= 0xE3 // attribute byte: bits 2-4 are unimplemented, read as 0
		}
		p.genLatch = value
		return value

	case 0x07: // PPUDATA
		renderingEnabled := p.mask.IsRenderingEnabled()
		value := p.readBuffer
		if p.v.Get() >= 0x3F00 {
			// Palette reads bypass the buffer and return immediately, but
			// the buffer itself still gets refilled from the nametable
			// mirror underneath the palette address space, not from the
			// palette byte just read.
			value = p.vbus.Read(p.v.Get(), renderingEnabled)
			p.readBuffer = p.vbus.Read(p.v.Get()-0x1000, renderingEnabled)
		} else {
			p.readBuffer = p.vbus.Read(p.v.Get(), renderingEnabled)
		}
		p.v.Set(p.v.Get() + p.control.IncrementMode())
		p.genLatch = value
		return value
	}

	return p.genLatch
}

// WriteOAMDMA services a CPU write to $4014: copies 256 bytes starting
// at page*0x100 from the CPU's address space into OAM (starting at the
// current OAMADDR, as real hardware does, not necessarily index 0) and
// stalls the CPU for 513 cycles. The extra cycle of a DMA that starts
// on an odd CPU cycle is not added here.
func (p *PPU) WriteOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		p.oam[p.oamAddress] = p.bm.Read(base + uint16(i))
		p.oamAddress++
	}
	p.bm.Stall(513)
}
