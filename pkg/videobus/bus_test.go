package videobus

import "testing"

type fakeMapper struct {
	chr       [0x2000]uint8
	mirroring Mirroring
	a12Calls  []uint16
	scanlines int
}

func (m *fakeMapper) ReadCHR(addr uint16) uint8         { return m.chr[addr] }
func (m *fakeMapper) WriteCHR(addr uint16, value uint8) { m.chr[addr] = value }
func (m *fakeMapper) Mirroring() Mirroring              { return m.mirroring }
func (m *fakeMapper) NotifyA12(addr uint16, renderingEnabled bool) {
	if renderingEnabled {
		m.a12Calls = append(m.a12Calls, addr)
	}
}
func (m *fakeMapper) Scanline() { m.scanlines++ }

func TestVideoBusPatternTableRoundTrip(t *testing.T) {
	bus := New()
	m := &fakeMapper{}
	bus.SetMapper(m)

	bus.Write(0x0123, 0xAB, false)
	if got := bus.Read(0x0123, false); got != 0xAB {
		t.Fatalf("pattern table round trip: got %#02x, want 0xAB", got)
	}
}

func TestVideoBusA12NotifiedOnlyWhileRendering(t *testing.T) {
	bus := New()
	m := &fakeMapper{}
	bus.SetMapper(m)

	bus.Read(0x1000, false)
	bus.Read(0x1000, true)
	if len(m.a12Calls) != 1 || m.a12Calls[0] != 0x1000 {
		t.Fatalf("expected exactly one A12 notification at $1000, got %v", m.a12Calls)
	}
}

func TestVideoBusEndScanlineForwardsToMapper(t *testing.T) {
	bus := New()
	m := &fakeMapper{}
	bus.SetMapper(m)

	bus.EndScanline()
	bus.EndScanline()
	if m.scanlines != 2 {
		t.Fatalf("expected 2 Scanline() calls, got %d", m.scanlines)
	}
}

func TestVideoBusHorizontalMirroring(t *testing.T) {
	bus := New()
	m := &fakeMapper{mirroring: MirrorHorizontal}
	bus.SetMapper(m)

	bus.Write(0x2000, 0x11, false)
	bus.Write(0x2800, 0x22, false)

	if got := bus.Read(0x2400, false); got != 0x11 {
		t.Fatalf("horizontal mirroring: $2400 should mirror $2000, got %#02x", got)
	}
	if got := bus.Read(0x2C00, false); got != 0x22 {
		t.Fatalf("horizontal mirroring: $2C00 should mirror $2800, got %#02x", got)
	}
}

func TestVideoBusVerticalMirroring(t *testing.T) {
	bus := New()
	m := &fakeMapper{mirroring: MirrorVertical}
	bus.SetMapper(m)

	bus.Write(0x2000, 0x11, false)
	bus.Write(0x2400, 0x22, false)

	if got := bus.Read(0x2800, false); got != 0x11 {
		t.Fatalf("vertical mirroring: $2800 should mirror $2000, got %#02x", got)
	}
	if got := bus.Read(0x2C00, false); got != 0x22 {
		t.Fatalf("vertical mirroring: $2C00 should mirror $2400, got %#02x", got)
	}
}

func TestVideoBusSingleScreenMirroring(t *testing.T) {
	bus := New()
	m := &fakeMapper{mirroring: MirrorSingleLow}
	bus.SetMapper(m)

	bus.Write(0x2000, 0x55, false)
	for _, addr := range []uint16{0x2400, 0x2800, 0x2C00} {
		if got := bus.Read(addr, false); got != 0x55 {
			t.Fatalf("single-screen-low mirroring: %#04x got %#02x, want 0x55", addr, got)
		}
	}
}

func TestVideoBusPaletteMirroring(t *testing.T) {
	bus := New()
	bus.SetMapper(&fakeMapper{})

	for _, base := range []uint16{0x3F00, 0x3F04, 0x3F08, 0x3F0C} {
		bus.Write(base, 0x30, false)
		if got := bus.Read(base+0x10, false); got != 0x30 {
			t.Fatalf("palette mirror %#04x -> %#04x: got %#02x, want 0x30", base, base+0x10, got)
		}
		bus.Write(base+0x10, 0x3C, false)
		if got := bus.Read(base, false); got != 0x3C {
			t.Fatalf("palette mirror write-back %#04x -> %#04x: got %#02x, want 0x3C", base+0x10, base, got)
		}
	}
}

func TestVideoBusNilMapperReturnsZero(t *testing.T) {
	bus := New()
	if got := bus.Read(0x0000, false); got != 0 {
		t.Fatalf("nil mapper pattern read: got %#02x, want 0", got)
	}
}
