package mapper

import (
	"testing"

	"github.com/nesppu/core/pkg/videobus"
)

func TestCNROMBankSwitch(t *testing.T) {
	chr := make([]uint8, chrBankSize8K*2)
	chr[0x0000] = 0x01       // bank 0, offset 0
	chr[chrBankSize8K] = 0x02 // bank 1, offset 0

	m, err := NewCNROM(chr, videobus.MirrorHorizontal)
	if err != nil {
		t.Fatalf("NewCNROM: %v", err)
	}

	if got := m.ReadCHR(0x0000); got != 0x01 {
		t.Fatalf("bank 0 read = %#02x, want 0x01", got)
	}

	m.WritePRG(0x8000, 1)
	if got := m.ReadCHR(0x0000); got != 0x02 {
		t.Fatalf("after bank select 1, read = %#02x, want 0x02", got)
	}
}

func TestCNROMBankWrapsToValidRange(t *testing.T) {
	chr := make([]uint8, chrBankSize8K*2)
	m, err := NewCNROM(chr, videobus.MirrorHorizontal)
	if err != nil {
		t.Fatalf("NewCNROM: %v", err)
	}

	m.WritePRG(0x8000, 5) // only 2 banks exist; must wrap
	if m.bank != 1 {
		t.Fatalf("bank select with out-of-range value: got bank %d, want 1", m.bank)
	}
}

func TestCNROMWriteCHRIsNoOp(t *testing.T) {
	chr := make([]uint8, chrBankSize8K)
	m, err := NewCNROM(chr, videobus.MirrorHorizontal)
	if err != nil {
		t.Fatalf("NewCNROM: %v", err)
	}

	m.WriteCHR(0x0000, 0xFF)
	if got := m.ReadCHR(0x0000); got != 0 {
		t.Fatalf("CNROM CHR-ROM write should be ignored, got %#02x", got)
	}
}

func TestCNROMRejectsBadCHRSize(t *testing.T) {
	if _, err := NewCNROM(make([]uint8, 100), videobus.MirrorHorizontal); err == nil {
		t.Fatal("expected error for CHR size not a multiple of 8KiB")
	}
}
