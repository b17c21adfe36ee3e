// Package mapper implements the cartridge-side half of the PPU's
// pluggable video bus: CHR storage, bank switching, and nametable
// mirroring for a handful of common iNES mapper boards. It is the video
// bus's Mapper interface brought to life with real hardware behavior,
// adapted from the reference emulator's pkg/cartridge mapper family.
//
// PRG-ROM banking and iNES file parsing are not implemented here: the
// CPU and ROM loading are out of scope for the PPU core (see SPEC_FULL.md
// DOMAIN STACK). Where a board's PRG-space writes are the only way real
// hardware reconfigures CHR banking or mirroring (MMC1's shift register,
// MMC3's bank-select pair, AxROM's single register), WritePRG is kept so
// tests can drive the mapper the way a CPU write would, without needing
// a CPU or a PRG-ROM image to exist.
package mapper

import "fmt"

const (
	chrBankSize1K = 1024
	chrBankSize2K = 2048
	chrBankSize4K = 4096
	chrBankSize8K = 8192
)

// sizeError reports a CHR/PRG image whose length isn't a sane multiple
// of the board's bank size, grounded on the reference's
// cartridge.LoadFromBytes error-wrapping style.
func sizeError(board string, field string, size int, bankSize int) error {
	return fmt.Errorf("mapper %s: %s size %d is not a multiple of %d-byte banks", board, field, size, bankSize)
}
