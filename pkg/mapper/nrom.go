package mapper

import "github.com/nesppu/core/pkg/videobus"

// NROM (iNES mapper 0) has no bank switching: a flat 8KiB CHR-ROM image,
// or 8KiB of CHR-RAM when the cartridge carries none, and a fixed
// mirroring mode set at construction. Adapted from the reference's
// pkg/cartridge/mapper0.go.
type NROM struct {
	chr       []uint8
	chrIsRAM  bool
	mirroring videobus.Mirroring
}

// NewNROM creates an NROM mapper. chr may be nil or empty, in which case
// 8KiB of CHR-RAM backs pattern table access instead.
func NewNROM(chr []uint8, mirroring videobus.Mirroring) *NROM {
	m := &NROM{mirroring: mirroring}
	if len(chr) > 0 {
		m.chr = append([]uint8(nil), chr...)
	} else {
		m.chr = make([]uint8, chrBankSize8K)
		m.chrIsRAM = true
	}
	return m
}

func (m *NROM) ReadCHR(addr uint16) uint8 {
	if int(addr) < len(m.chr) {
		return m.chr[addr]
	}
	return 0
}

func (m *NROM) WriteCHR(addr uint16, value uint8) {
	if m.chrIsRAM && int(addr) < len(m.chr) {
		m.chr[addr] = value
	}
}

func (m *NROM) Mirroring() videobus.Mirroring { return m.mirroring }
