package ppu

// spriteEvaluation scans primary OAM for sprites visible on the next
// scanline, copying up to 8 into secondary OAM. Adapted from the
// reference implementation's sprite evaluation, with one correction:
// each secondary OAM slot also records which primary OAM index it came
// from (oamIndex), so sprite-0 hit detection doesn't have to assume
// slot 0 of secondary OAM is always sprite 0 - true for this simple
// single-pass evaluation order, but made explicit rather than implicit.
func (p *PPU) spriteEvaluation() {
	for i := range p.secondaryOAM {
		p.secondaryOAM[i] = 0xFF
	}
	for i := range p.oamIndex {
		p.oamIndex[i] = 0xFF
	}

	p.spriteCount = 0

	if !p.mask.IsRenderingEnabled() {
		return
	}

	spriteHeight := uint16(8)
	if p.control.SpriteSize() != 0 {
		spriteHeight = 16
	}

	for i := uint8(0); i < 64; i++ {
		oamIndex := uint16(i) * 4
		spriteY := uint16(p.oam[oamIndex])
		diff := uint16(p.scanline) - spriteY

		if diff >= spriteHeight {
			continue
		}

		if p.spriteCount >= 8 {
			p.status.SetSpriteOverflow(true)
			break
		}

		secondaryIndex := uint16(p.spriteCount) * 4
		p.secondaryOAM[secondaryIndex+0] = p.oam[oamIndex+0]
		p.secondaryOAM[secondaryIndex+1] = p.oam[oamIndex+1]
		p.secondaryOAM[secondaryIndex+2] = p.oam[oamIndex+2]
		p.secondaryOAM[secondaryIndex+3] = p.oam[oamIndex+3]
		p.oamIndex[p.spriteCount] = i

		p.spriteCount++
	}
}

// spriteFetching loads pattern data for every sprite secondary OAM
// picked up for the upcoming scanline. Runs at the end of the current
// scanline (cycle 320), mirroring the reference's spriteFetching.
func (p *PPU) spriteFetching() {
	spriteHeight := uint16(8)
	spritePatternTable := p.control.SpritePatternTable()
	if p.control.SpriteSize() != 0 {
		spriteHeight = 16
	}

	for i := uint8(0); i < p.spriteCount; i++ {
		secondaryIndex := uint16(i) * 4
		spriteY := p.secondaryOAM[secondaryIndex+0]
		tileIndex := p.secondaryOAM[secondaryIndex+1]
		attributes := p.secondaryOAM[secondaryIndex+2]
		spriteX := p.secondaryOAM[secondaryIndex+3]

		p.spriteAttributes[i] = attributes
		p.spritePositions[i] = spriteX

		spriteRow := uint16(p.scanline) - uint16(spriteY)
		if attributes&0x80 != 0 {
			spriteRow = spriteHeight - 1 - spriteRow
		}

		var patternAddress uint16
		if spriteHeight == 16 {
			if spriteRow < 8 {
				patternAddress = (uint16(tileIndex&0x01) << 12) |
					(uint16(tileIndex&0xFE) << 4) |
					(spriteRow & 0x07)
			} else {
				patternAddress = (uint16(tileIndex&0x01) << 12) |
					((uint16(tileIndex&0xFE) + 1) << 4) |
					((spriteRow - 8) & 0x07)
			}
		} else {
			patternAddress = spritePatternTable |
				(uint16(tileIndex) << 4) |
				(spriteRow & 0x07)
		}

		renderingEnabled := p.mask.IsRenderingEnabled()
		patternLow := p.vbus.Read(patternAddress, renderingEnabled)
		patternHigh := p.vbus.Read(patternAddress+8, renderingEnabled)

		if attributes&0x40 != 0 {
			patternLow = reverseByte(patternLow)
			patternHigh = reverseByte(patternHigh)
		}

		p.spriteShifterPatternLo[i] = patternLow
		p.spriteShifterPatternHi[i] = patternHigh
	}
}

func reverseByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// renderSprites returns the sprite pixel at screen column x, along with
// its palette selector, priority bit, and whether it came from primary
// OAM slot 0 (for sprite-0 hit).
func (p *PPU) renderSprites(x uint16) (pixel uint8, palette uint8, priority bool, isSprite0 bool) {
	if !p.mask.RenderSprites() {
		return 0, 0, false, false
	}
	if x < 8 && !p.mask.RenderSpritesLeft() {
		return 0, 0, false, false
	}

	for i := uint8(0); i < p.spriteCount; i++ {
		offset := int16(x) - int16(p.spritePositions[i])
		if offset < 0 || offset >= 8 {
			continue
		}

		shift := uint8(7 - offset)
		pixelLow := (p.spriteShifterPatternLo[i] >> shift) & 0x01
		pixelHigh := (p.spriteShifterPatternHi[i] >> shift) & 0x01
		pixelValue := (pixelHigh << 1) | pixelLow

		if pixelValue == 0 {
			continue
		}

		spritePalette := p.spriteAttributes[i] & 0x03
		spritePriority := (p.spriteAttributes[i] & 0x20) == 0
		sprite0 := p.oamIndex[i] == 0

		return pixelValue, spritePalette, spritePriority, sprite0
	}

	return 0, 0, false, false
}
