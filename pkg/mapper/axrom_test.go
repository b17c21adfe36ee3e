package mapper

import (
	"testing"

	"github.com/nesppu/core/pkg/videobus"
)

func TestAxROMDefaultMirroring(t *testing.T) {
	m := NewAxROM()
	if got := m.Mirroring(); got != videobus.MirrorSingleLow {
		t.Fatalf("default Mirroring() = %v, want MirrorSingleLow", got)
	}
}

func TestAxROMMirroringBitToggle(t *testing.T) {
	m := NewAxROM()

	m.WritePRG(0x8000, 0x10)
	if got := m.Mirroring(); got != videobus.MirrorSingleHigh {
		t.Fatalf("after bit4 set, Mirroring() = %v, want MirrorSingleHigh", got)
	}

	m.WritePRG(0x8000, 0x00)
	if got := m.Mirroring(); got != videobus.MirrorSingleLow {
		t.Fatalf("after bit4 clear, Mirroring() = %v, want MirrorSingleLow", got)
	}
}

func TestAxROMCHRRAMReadWrite(t *testing.T) {
	m := NewAxROM()
	m.WriteCHR(0x0042, 0x99)
	if got := m.ReadCHR(0x0042); got != 0x99 {
		t.Fatalf("CHR-RAM round trip: got %#02x, want 0x99", got)
	}
}
