package mapper

import "github.com/nesppu/core/pkg/videobus"

// AxROM (iNES mapper 7) has no CHR banking at all: a fixed 8KiB of
// CHR-RAM. Its single PRG-space register also picks which 1KiB page of
// nametable RAM single-screen mirroring uses (bit 4), which is the only part
// of the register the video bus cares about. Adapted from the
// reference's pkg/cartridge/mapper7.go.
type AxROM struct {
	chr       [chrBankSize8K]uint8
	mirroring videobus.Mirroring
}

func NewAxROM() *AxROM {
	return &AxROM{mirroring: videobus.MirrorSingleLow}
}

// WritePRG models the CPU's bank-select write; bits 0-2 (PRG bank) are
// accepted but unused since PRG-ROM is out of scope, bit 4 picks which
// nametable single-screen mirroring mirrors to.
func (m *AxROM) WritePRG(addr uint16, value uint8) {
	if addr < 0x8000 {
		return
	}
	if value&0x10 != 0 {
		m.mirroring = videobus.MirrorSingleHigh
	} else {
		m.mirroring = videobus.MirrorSingleLow
	}
}

func (m *AxROM) ReadCHR(addr uint16) uint8         { return m.chr[addr%chrBankSize8K] }
func (m *AxROM) WriteCHR(addr uint16, value uint8) { m.chr[addr%chrBankSize8K] = value }
func (m *AxROM) Mirroring() videobus.Mirroring     { return m.mirroring }
