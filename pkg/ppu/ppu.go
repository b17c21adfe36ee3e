// Package ppu implements the core of the NES/Famicom Picture Processing
// Unit (2C02): the cycle-accurate scanline/dot scheduler, the
// background and sprite pixel pipelines, the loopy scroll-counter
// model, and the CPU-visible $2000-$2007/$4014 register interface.
//
// ROM loading, CPU instruction execution, and turning palette indices
// into displayed RGB pixels are all out of scope; this package talks to
// the rest of a console only through the BusMaster interface (for CPU
// timing and NMI delivery) and the videobus package (for nametable,
// palette, and pattern-table access).
package ppu

import "github.com/nesppu/core/pkg/videobus"

// TimingMode parameterizes the two real scanline geometries the 2C02
// family shipped with. NTSC consoles skip the idle dot at the start of
// scanline 0 on odd frames while rendering is enabled; PAL consoles run
// 50 extra scanlines of vblank and never skip a dot.
type TimingMode struct {
	ScanlinesPerFrame int16
	OddFrameDotSkip   bool
}

var (
	NTSC = TimingMode{ScanlinesPerFrame: 262, OddFrameDotSkip: true}
	PAL  = TimingMode{ScanlinesPerFrame: 312, OddFrameDotSkip: false}
)

const CyclesPerScanline = 341

// PPU is the NES Picture Processing Unit (2C02).
type PPU struct {
	vbus *videobus.VideoBus

	oam        [256]uint8
	oamAddress uint8

	control  PPUControl
	mask     PPUMask
	status   PPUStatus
	genLatch uint8

	v, t       LoopyRegister
	fineX      uint8
	writeLatch bool
	readBuffer uint8

	scanline      int16
	cycle         uint16
	frame         uint64
	frameComplete bool
	timing        TimingMode
	dotsSinceCPU  uint8

	bgNextTileID     uint8
	bgNextTileAttrib uint8
	bgNextTileLSB    uint8
	bgNextTileMSB    uint8

	bgShifterPatternLo uint16
	bgShifterPatternHi uint16
	bgShifterAttribLo  uint16
	bgShifterAttribHi  uint16

	secondaryOAM [32]uint8
	oamIndex     [8]uint8
	spriteCount  uint8

	spriteShifterPatternLo [8]uint8
	spriteShifterPatternHi [8]uint8
	spriteAttributes       [8]uint8
	spritePositions        [8]uint8

	frameBuffer FrameBuffer

	bm      BusMaster
	nmiLine bool

	frameHook    FrameHook
	scanlineHook ScanlineHook
}

// New creates a PPU clocked according to timing (NTSC or PAL), with no
// mapper and a no-op bus master wired in. Call SetMapper and
// SetBusMaster before clocking it for real.
func New(timing TimingMode) *PPU {
	return &PPU{
		vbus:     videobus.New(),
		timing:   timing,
		bm:       NullBusMaster{},
		scanline: -1,
	}
}

// SetMapper connects a cartridge mapper for pattern-table, nametable
// mirroring, and (if the mapper implements them) A12/scanline IRQ
// notification.
func (p *PPU) SetMapper(m videobus.Mapper) {
	p.vbus.SetMapper(m)
}

// SetBusMaster wires in the CPU-side seam used for cycle advancement,
// NMI delivery, and OAM DMA reads/stalls.
func (p *PPU) SetBusMaster(bm BusMaster) {
	if bm == nil {
		bm = NullBusMaster{}
	}
	p.bm = bm
}

// FrameBuffer returns a pointer to the current (possibly in-progress)
// frame's pixel buffer.
func (p *PPU) FrameBuffer() *FrameBuffer {
	return &p.frameBuffer
}

// IsFrameComplete reports whether a full frame has been rendered since
// the last call to ClearFrameComplete.
func (p *PPU) IsFrameComplete() bool {
	return p.frameComplete
}

// ClearFrameComplete resets the frame-complete latch.
func (p *PPU) ClearFrameComplete() {
	p.frameComplete = false
}

// Frame returns the number of frames completed since New; Reset does
// not clear it.
func (p *PPU) Frame() uint64 { return p.frame }

// Scanline and Cycle report the PPU's current position for tooling and
// tests; scanline -1 is the pre-render line.
func (p *PPU) Scanline() int16 { return p.scanline }
func (p *PPU) Cycle() uint16   { return p.cycle }

// Reset restores power-on register state: PPUCTRL, PPUMASK, PPUSTATUS,
// the write toggle, scroll state (t and fineX), and the read buffer all
// clear. OAM, nametable RAM, palette RAM, and the current VRAM address
// v all survive - v in particular keeps whatever value rendering or the
// CPU last left it at, matching real hardware.
func (p *PPU) Reset() {
	p.control.Set(0)
	p.mask.Set(0)
	p.status.Set(0)
	p.genLatch = 0
	p.oamAddress = 0
	p.writeLatch = false
	p.t.Set(0)
	p.fineX = 0
	p.readBuffer = 0
	p.scanline = -1
	p.cycle = 0
	p.dotsSinceCPU = 0
	p.setNMILine(false)
}

// updateNMILine recomputes the level-sensitive NMI output from vblank
// state and PPUCTRL's enable bit, and forwards every change - including
// a 0->1 transition caused purely by a PPUCTRL write during an already
// active vblank - to the bus master. Real 2C02 hardware can fire a
// second NMI this way; an edge-triggered bus master that only reacts to
// 0->1 transitions reproduces that behavior for free.
func (p *PPU) updateNMILine() {
	line := p.status.VBlank() && p.control.EnableNMI()
	p.setNMILine(line)
}

func (p *PPU) setNMILine(line bool) {
	if line == p.nmiLine {
		return
	}
	p.nmiLine = line
	p.bm.SetNMILine(line)
}
