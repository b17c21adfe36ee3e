package mapper

import "github.com/nesppu/core/pkg/videobus"

// UxROM (iNES mapper 2) switches PRG-ROM banks but always uses a fixed
// 8KiB of CHR-RAM, so from the video bus's point of view it behaves
// identically to NROM with CHR-RAM. Kept as its own type (rather than an
// alias for NROM) since real UxROM boards expose PRG bank-select writes
// that the CPU issues through this same chip; CHR access is along for
// the ride. Adapted from the reference's pkg/cartridge/mapper2.go.
type UxROM struct {
	chr       [chrBankSize8K]uint8
	mirroring videobus.Mirroring
}

func NewUxROM(mirroring videobus.Mirroring) *UxROM {
	return &UxROM{mirroring: mirroring}
}

func (m *UxROM) ReadCHR(addr uint16) uint8         { return m.chr[addr%chrBankSize8K] }
func (m *UxROM) WriteCHR(addr uint16, value uint8) { m.chr[addr%chrBankSize8K] = value }
func (m *UxROM) Mirroring() videobus.Mirroring     { return m.mirroring }
