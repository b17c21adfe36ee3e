package mapper

import "github.com/nesppu/core/pkg/videobus"

// CNROM (iNES mapper 3) has fixed PRG-ROM and a single CPU-selectable
// 8KiB CHR-ROM bank. Adapted from the reference's
// pkg/cartridge/mapper3.go; WritePRG here plays the role the CPU would
// on real hardware (any write to $8000-$FFFF loads the bank-select
// latch) so tests can flip banks without a PRG image or CPU.
type CNROM struct {
	chr       []uint8
	banks     uint8
	bank      uint8
	mirroring videobus.Mirroring
}

func NewCNROM(chr []uint8, mirroring videobus.Mirroring) (*CNROM, error) {
	if len(chr) == 0 || len(chr)%chrBankSize8K != 0 {
		return nil, sizeError("CNROM", "CHR", len(chr), chrBankSize8K)
	}
	return &CNROM{
		chr:       append([]uint8(nil), chr...),
		banks:     uint8(len(chr) / chrBankSize8K),
		mirroring: mirroring,
	}, nil
}

// WritePRG models the CPU's bank-select write (any address $8000-$FFFF).
func (m *CNROM) WritePRG(addr uint16, value uint8) {
	if addr >= 0x8000 && m.banks > 0 {
		m.bank = value % m.banks
	}
}

func (m *CNROM) ReadCHR(addr uint16) uint8 {
	offset := uint32(m.bank)*chrBankSize8K + uint32(addr)
	if int(offset) < len(m.chr) {
		return m.chr[offset]
	}
	return 0
}

// WriteCHR is a no-op: CNROM's CHR is ROM, never RAM.
func (m *CNROM) WriteCHR(addr uint16, value uint8) {}

func (m *CNROM) Mirroring() videobus.Mirroring { return m.mirroring }
