package mapper

import "github.com/nesppu/core/pkg/videobus"

// MMC3 (iNES mapper 4) exposes eight bank registers selected in pairs by
// even/odd writes to $8000-$9FFF, a mirroring latch at $A000-$BFFF, and
// a scanline-counting IRQ generator clocked by A12 rising edges (or,
// here, by the video bus's Scanline() hook, matching the simplified
// "clock on scanline boundary" behavior most emulators use in place of
// true PPU-address-line snooping). Adapted from the reference's
// pkg/cartridge/mapper4.go CHR addressing and IRQ counter logic; PRG
// banking is not modeled since PRG-ROM is out of scope here.
type MMC3 struct {
	chr []uint8

	bankSelect uint8
	registers  [8]uint8
	mirroring  videobus.Mirroring

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqPending bool

	lastA12 bool
}

func NewMMC3(chr []uint8, mirroring videobus.Mirroring) (*MMC3, error) {
	if len(chr) == 0 || len(chr)%chrBankSize1K != 0 {
		return nil, sizeError("MMC3", "CHR", len(chr), chrBankSize1K)
	}
	return &MMC3{
		chr:       append([]uint8(nil), chr...),
		mirroring: mirroring,
	}, nil
}

// WritePRG dispatches the four MMC3 register windows, matching the
// reference's even/odd-address decode in mapper4.go.
func (m *MMC3) WritePRG(addr uint16, value uint8) {
	even := addr%2 == 0
	switch {
	case addr >= 0x8000 && addr <= 0x9FFF:
		if even {
			m.bankSelect = value
		} else {
			m.registers[m.bankSelect&0x07] = value
		}
	case addr >= 0xA000 && addr <= 0xBFFF:
		if even {
			if value&0x01 != 0 {
				m.mirroring = videobus.MirrorHorizontal
			} else {
				m.mirroring = videobus.MirrorVertical
			}
		}
		// odd writes in this range control PRG-RAM protect, out of scope.
	case addr >= 0xC000 && addr <= 0xDFFF:
		if even {
			m.irqLatch = value
		} else {
			m.irqCounter = 0
			m.irqReload = true
		}
	case addr >= 0xE000:
		if even {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *MMC3) chrMode() uint8 { return (m.bankSelect >> 7) & 0x01 }

// ReadCHR splits the 8KiB pattern table window into two 2KiB banks and
// four 1KiB banks, swapped between the $0000/$1000 halves depending on
// chrMode, exactly as real MMC3 hardware does.
func (m *MMC3) ReadCHR(addr uint16) uint8 {
	offset := m.chrOffset(addr)
	if int(offset) < len(m.chr) {
		return m.chr[offset]
	}
	return 0
}

// WriteCHR is a no-op: MMC3 boards use CHR-ROM, never CHR-RAM.
func (m *MMC3) WriteCHR(addr uint16, value uint8) {}

func (m *MMC3) chrOffset(addr uint16) uint32 {
	bank2k0, bank2k1 := m.registers[0]&0xFE, m.registers[1]&0xFE
	bank1k2, bank1k3 := m.registers[2], m.registers[3]
	bank1k4, bank1k5 := m.registers[4], m.registers[5]

	region := addr / chrBankSize1K
	within := uint32(addr % chrBankSize1K)

	if m.chrMode() == 0 {
		switch region {
		case 0, 1:
			return uint32(bank2k0)*chrBankSize1K + uint32(region)*chrBankSize1K + within
		case 2, 3:
			return uint32(bank2k1)*chrBankSize1K + uint32(region-2)*chrBankSize1K + within
		case 4:
			return uint32(bank1k2)*chrBankSize1K + within
		case 5:
			return uint32(bank1k3)*chrBankSize1K + within
		case 6:
			return uint32(bank1k4)*chrBankSize1K + within
		default:
			return uint32(bank1k5)*chrBankSize1K + within
		}
	}

	switch region {
	case 0:
		return uint32(bank1k2)*chrBankSize1K + within
	case 1:
		return uint32(bank1k3)*chrBankSize1K + within
	case 2:
		return uint32(bank1k4)*chrBankSize1K + within
	case 3:
		return uint32(bank1k5)*chrBankSize1K + within
	case 4, 5:
		return uint32(bank2k0)*chrBankSize1K + uint32(region-4)*chrBankSize1K + within
	default:
		return uint32(bank2k1)*chrBankSize1K + uint32(region-6)*chrBankSize1K + within
	}
}

func (m *MMC3) Mirroring() videobus.Mirroring { return m.mirroring }

// NotifyA12 clocks the IRQ counter on A12's rising edge (addr bit 12
// set) while rendering is enabled, the same trigger real MMC3 boards
// use. Most emulators instead clock once per Scanline(); both hooks are
// implemented here and either is sufficient to drive the counter.
func (m *MMC3) NotifyA12(addr uint16, renderingEnabled bool) {
	a12 := addr&0x1000 != 0
	if renderingEnabled && a12 && !m.lastA12 {
		m.clockIRQCounter()
	}
	m.lastA12 = a12
}

// Scanline clocks the IRQ counter once per rendered scanline, the
// simplified trigger most software-rendered emulators substitute for
// true A12 edge detection.
func (m *MMC3) Scanline() {
	m.clockIRQCounter()
}

func (m *MMC3) clockIRQCounter() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

// IRQPending reports whether the scanline counter has reached zero
// since the last ClearIRQ, for a BusMaster to poll and service.
func (m *MMC3) IRQPending() bool { return m.irqPending }

// ClearIRQ acknowledges a pending IRQ.
func (m *MMC3) ClearIRQ() { m.irqPending = false }
