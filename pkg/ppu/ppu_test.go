package ppu

import "testing"

func TestResetClearsRegistersButNotMemory(t *testing.T) {
	p := newTestPPU()
	p.control.Set(0xFF)
	p.mask.Set(0xFF)
	p.oam[5] = 0x42
	p.vbus.Write(0x2000, 0x11, false)

	p.Reset()

	if p.control.Get() != 0 {
		t.Fatalf("control after Reset = %#02x, want 0", p.control.Get())
	}
	if p.oam[5] != 0x42 {
		t.Fatal("Reset should not touch OAM contents")
	}
	if got := p.vbus.Read(0x2000, false); got != 0x11 {
		t.Fatal("Reset should not touch nametable RAM")
	}
}

func TestFrameCompleteLatchAndClear(t *testing.T) {
	p := newTestPPU()
	p.SetBusMaster(&RecordingBusMaster{})

	if p.IsFrameComplete() {
		t.Fatal("a freshly constructed PPU should not report a complete frame")
	}

	framesSeen := p.frame
	for p.frame == framesSeen {
		p.clockDot()
	}

	if !p.IsFrameComplete() {
		t.Fatal("IsFrameComplete should be true right after a frame wraps")
	}
	p.ClearFrameComplete()
	if p.IsFrameComplete() {
		t.Fatal("ClearFrameComplete should reset the latch")
	}
}

func TestRunDotsDrivesBusMasterAtOneThirdRate(t *testing.T) {
	p := newTestPPU()
	bm := &RecordingBusMaster{}
	p.SetBusMaster(bm)

	p.RunDots(9)

	if bm.Cycles != 3 {
		t.Fatalf("AdvanceCycle calls = %d, want 3 for 9 dots", bm.Cycles)
	}
}

func TestBackdropPixelWhenRenderingDisabled(t *testing.T) {
	p := newTestPPU()
	p.vbus.Write(0x3F00, 0x16, false)

	p.scanline = 5
	p.cycle = 1
	p.renderPixel()

	fb := p.FrameBuffer()
	idx := uint32(5)*ScreenWidth + 0
	if !fb.PixelValid(idx) {
		t.Fatal("pixel should be marked valid after renderPixel")
	}
	if got := fb.PixelPaletteIndex(idx); got != 0x16 {
		t.Fatalf("backdrop pixel palette index = %#02x, want 0x16", got)
	}
	if !fb.PixelIsBackground(idx) {
		t.Fatal("backdrop pixel should be marked as background")
	}
}

func TestFullFrameProducesOnlyValidPixelsInVisibleArea(t *testing.T) {
	p := newTestPPU()
	p.SetBusMaster(&RecordingBusMaster{})

	framesSeen := p.frame
	for p.frame == framesSeen {
		p.clockDot()
	}

	fb := p.FrameBuffer()
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if !fb.PixelValid(uint32(y)*ScreenWidth + uint32(x)) {
				t.Fatalf("pixel (%d,%d) not valid after a full frame", x, y)
			}
		}
	}
}
