package mapper

import "github.com/nesppu/core/pkg/videobus"

// MMC1 (iNES mapper 1) configures itself through a 5-bit serial shift
// register fed one bit per CPU write to $8000-$FFFF; writing with bit 7
// set resets the shift register instead of shifting a bit in. On the
// fifth write the accumulated value latches into one of four internal
// registers selected by the written address, mirroring the reference's
// pkg/cartridge/mapper1.go. PRG banking bits of the control/register
// values are retained (to match real shift-register behavior bit for
// bit) but not otherwise used, since PRG-ROM is out of scope here.
type MMC1 struct {
	chr      []uint8
	chrIsRAM bool

	shift      uint8
	shiftCount uint8

	control  uint8
	chrBank0 uint8
	chrBank1 uint8
}

func NewMMC1(chr []uint8) *MMC1 {
	m := &MMC1{control: 0x0C}
	if len(chr) > 0 {
		m.chr = append([]uint8(nil), chr...)
	} else {
		m.chr = make([]uint8, chrBankSize8K)
		m.chrIsRAM = true
	}
	return m
}

// WritePRG feeds one bit of the serial shift register, matching the
// real chip's behavior when the CPU writes to $8000-$FFFF.
func (m *MMC1) WritePRG(addr uint16, value uint8) {
	if addr < 0x8000 {
		return
	}
	if value&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shift |= (value & 0x01) << m.shiftCount
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	result := m.shift
	m.shift = 0
	m.shiftCount = 0

	switch {
	case addr <= 0x9FFF:
		m.control = result
	case addr <= 0xBFFF:
		m.chrBank0 = result
	case addr <= 0xDFFF:
		m.chrBank1 = result
	default:
		// PRG bank select register: not modeled, PRG-ROM is out of scope.
	}
}

func (m *MMC1) chrMode() uint8 { return (m.control >> 4) & 0x01 }

func (m *MMC1) ReadCHR(addr uint16) uint8 {
	offset := m.chrOffset(addr)
	if int(offset) < len(m.chr) {
		return m.chr[offset]
	}
	return 0
}

func (m *MMC1) WriteCHR(addr uint16, value uint8) {
	if !m.chrIsRAM {
		return
	}
	offset := m.chrOffset(addr)
	if int(offset) < len(m.chr) {
		m.chr[offset] = value
	}
}

func (m *MMC1) chrOffset(addr uint16) uint32 {
	if m.chrMode() == 0 {
		// 8KiB mode: chrBank0's low bits select an 8KiB bank, bit 0 ignored.
		bank := uint32(m.chrBank0 >> 1)
		return bank*chrBankSize8K + uint32(addr)
	}
	// 4KiB mode: chrBank0 selects $0000-$0FFF, chrBank1 selects $1000-$1FFF.
	if addr < 0x1000 {
		return uint32(m.chrBank0)*chrBankSize4K + uint32(addr)
	}
	return uint32(m.chrBank1)*chrBankSize4K + uint32(addr-0x1000)
}

func (m *MMC1) Mirroring() videobus.Mirroring {
	switch m.control & 0x03 {
	case 0:
		return videobus.MirrorSingleLow
	case 1:
		return videobus.MirrorSingleHigh
	case 2:
		return videobus.MirrorVertical
	default:
		return videobus.MirrorHorizontal
	}
}
