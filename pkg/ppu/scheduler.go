package ppu

// RunDots advances the PPU by n dots, driving the bus master once per
// three dots consumed (the fixed 3:1 PPU:CPU clock ratio). This
// inverts the reference's wiring, where an external bus clocked the
// PPU; here the PPU's own scheduler is what drives the CPU forward,
// since the PPU - not a CPU - is this module's subject.
func (p *PPU) RunDots(n int) {
	for i := 0; i < n; i++ {
		p.clockDot()
		p.dotsSinceCPU++
		if p.dotsSinceCPU == 3 {
			p.dotsSinceCPU = 0
			p.bm.AdvanceCycle()
		}
	}
}

// clockDot advances the PPU by exactly one dot.
func (p *PPU) clockDot() {
	if p.scanline >= 0 && p.scanline < 240 && p.cycle >= 1 && p.cycle <= 256 {
		p.renderPixel()
	}

	if p.scanline >= -1 && p.scanline < 240 {
		if p.scanline == -1 && p.cycle == 1 {
			p.status.SetVBlank(false)
			p.status.SetSprite0Hit(false)
			p.status.SetSpriteOverflow(false)
			p.frameComplete = false
			p.updateNMILine()
		}

		if (p.cycle >= 2 && p.cycle < 258) || (p.cycle >= 321 && p.cycle < 338) {
			p.updateShifters()
			p.backgroundFetchCycle((p.cycle - 1) % 8)
		}

		if p.cycle == 256 {
			if p.mask.IsRenderingEnabled() {
				p.v.IncrementY()
			}
		}

		if p.cycle == 257 {
			p.loadBackgroundShifters()
			if p.mask.IsRenderingEnabled() {
				p.v.TransferX(&p.t)
			}
			p.spriteEvaluation()
		}

		if p.cycle == 320 {
			p.spriteFetching()
		}

		if p.cycle == 338 || p.cycle == 340 {
			renderingEnabled := p.mask.IsRenderingEnabled()
			p.bgNextTileID = p.vbus.Read(0x2000|(p.v.Get()&0x0FFF), renderingEnabled)
		}

		if p.scanline == -1 && p.cycle >= 280 && p.cycle < 305 {
			if p.mask.IsRenderingEnabled() {
				p.v.TransferY(&p.t)
			}
		}
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status.SetVBlank(true)
		p.updateNMILine()
	}

	if p.cycle == CyclesPerScanline-1 {
		if p.scanline >= -1 && p.scanline < 240 {
			p.vbus.EndScanline()
		}
		p.runScanlineHook()
	}

	p.cycle++
	if p.cycle >= CyclesPerScanline {
		p.cycle = 0
		p.scanline++

		if p.scanline == 0 && (p.frame&1) == 1 && p.timing.OddFrameDotSkip && p.mask.IsRenderingEnabled() {
			p.cycle = 1
		}

		if p.scanline >= p.timing.ScanlinesPerFrame-1 {
			p.scanline = -1
			p.frameComplete = true
			p.frame++
			p.runFrameHook()
		}
	}
}

// renderPixel composes and writes one pixel of the visible frame.
func (p *PPU) renderPixel() {
	x := p.cycle - 1
	y := uint16(p.scanline)
	if x >= ScreenWidth || y >= ScreenHeight {
		return
	}

	renderingEnabled := p.mask.IsRenderingEnabled()

	if !renderingEnabled {
		backdrop := applyGrayscale(p.vbus.Read(0x3F00, false)&0x3F, &p.mask)
		p.frameBuffer.set(x, y, backdrop, true)
		return
	}

	bgPixel, bgPalette := p.backgroundPixel(x)
	sprPixel, sprPalette, sprPriority, isSprite0 := p.renderSprites(x)

	var finalPaletteSel uint8
	var isBackground bool
	if sprPixel != 0 {
		finalPaletteSel, isBackground = compose(bgPixel, bgPalette, sprPixel, sprPalette+4, sprPriority)
	} else {
		finalPaletteSel, isBackground = compose(bgPixel, bgPalette, 0, 0, sprPriority)
	}

	var finalPixel uint8
	if isBackground {
		finalPixel = bgPixel
	} else {
		finalPixel = sprPixel
	}

	if bgPixel != 0 && sprPixel != 0 && isSprite0 && x >= 1 && x < 255 {
		if p.mask.RenderBackground() && p.mask.RenderSprites() {
			if p.mask.RenderBackgroundLeft() || x >= 8 {
				p.status.SetSprite0Hit(true)
			}
		}
	}

	address := uint16((finalPaletteSel << 2) | (finalPixel & 0x03))
	colorIndex := applyGrayscale(p.vbus.Read(0x3F00+address, renderingEnabled)&0x3F, &p.mask)
	p.frameBuffer.set(x, y, colorIndex, isBackground)
}
