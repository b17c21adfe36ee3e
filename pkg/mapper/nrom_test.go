package mapper

import (
	"testing"

	"github.com/nesppu/core/pkg/videobus"
)

func TestNROMReadCHRROM(t *testing.T) {
	chr := make([]uint8, chrBankSize8K)
	chr[0x0010] = 0x42
	m := NewNROM(chr, videobus.MirrorHorizontal)

	if got := m.ReadCHR(0x0010); got != 0x42 {
		t.Fatalf("ReadCHR(0x10) = %#02x, want 0x42", got)
	}
}

func TestNROMWriteCHRROMIsNoOp(t *testing.T) {
	chr := make([]uint8, chrBankSize8K)
	m := NewNROM(chr, videobus.MirrorVertical)

	m.WriteCHR(0x0000, 0xFF)
	if got := m.ReadCHR(0x0000); got != 0 {
		t.Fatalf("write to CHR-ROM should be ignored, got %#02x", got)
	}
}

func TestNROMCHRRAMFallback(t *testing.T) {
	m := NewNROM(nil, videobus.MirrorHorizontal)

	m.WriteCHR(0x1FFF, 0x7E)
	if got := m.ReadCHR(0x1FFF); got != 0x7E {
		t.Fatalf("CHR-RAM write/read mismatch: got %#02x, want 0x7E", got)
	}
}

func TestNROMMirroring(t *testing.T) {
	m := NewNROM(nil, videobus.MirrorVertical)
	if got := m.Mirroring(); got != videobus.MirrorVertical {
		t.Fatalf("Mirroring() = %v, want MirrorVertical", got)
	}
}
