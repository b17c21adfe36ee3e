package ppu

import "github.com/golang/glog"

// FrameHook is invoked once per completed frame, after the frame
// buffer for that frame has been fully written.
type FrameHook func(p *PPU)

// ScanlineHook is invoked once per scanline, right after the PPU
// finishes dot 340 of that scanline.
type ScanlineHook func(p *PPU, scanline int16)

// SetFrameHook installs (or clears, with nil) a diagnostic callback run
// after every completed frame. Intended for tooling - frame dumping,
// test harnesses comparing against golden frames - not for anything
// the rendering pipeline itself depends on.
func (p *PPU) SetFrameHook(hook FrameHook) {
	p.frameHook = hook
}

// SetScanlineHook installs (or clears, with nil) a diagnostic callback
// run after every scanline.
func (p *PPU) SetScanlineHook(hook ScanlineHook) {
	p.scanlineHook = hook
}

// runFrameHook invokes the installed frame hook, if any, recovering
// from a panic so a broken diagnostic callback can't corrupt or halt
// emulation.
func (p *PPU) runFrameHook() {
	if p.frameHook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("ppu: frame hook panicked at frame %d: %v", p.frame, r)
		}
	}()
	if glog.V(2) {
		glog.Infof("ppu: frame %d complete", p.frame)
	}
	p.frameHook(p)
}

func (p *PPU) runScanlineHook() {
	if p.scanlineHook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("ppu: scanline hook panicked at scanline %d: %v", p.scanline, r)
		}
	}()
	if glog.V(2) {
		glog.Infof("ppu: scanline %d complete (frame %d)", p.scanline, p.frame)
	}
	p.scanlineHook(p, p.scanline)
}
