package cpu_test

import (
	"errors"
	"testing"

	"github.com/beevik/op65/bus"
	"github.com/beevik/op65/cpu"
)

func expectError(t *testing.T, err error, kind bus.ErrorKind, addr uint16) {
	t.Helper()
	var ae *bus.AddressError
	if !errors.As(err, &ae) {
		t.Fatalf("expected %v error, got: %v", kind, err)
	}
	if ae.Kind != kind {
		t.Errorf("error kind incorrect. exp: %v, got: %v", kind, ae.Kind)
	}
	if ae.HasAddr() && ae.Addr != addr {
		t.Errorf("error address incorrect. exp: $%04X, got: $%04X", addr, ae.Addr)
	}
}

func loadFlat(addr uint16, code ...byte) *bus.FlatMemory {
	m := bus.NewFlatMemory()
	m.SetWindow(addr, code)
	return m
}

func decode(t *testing.T, b bus.Bus, pc uint16, reg cpu.Registers) cpu.Decoded {
	t.Helper()
	d, err := cpu.NewDecoder(b).DecodeAt(pc, reg)
	if err != nil {
		t.Fatalf("decoding at $%04X failed: %v", pc, err)
	}
	return d
}

func TestDecodeAbsolute(t *testing.T) {
	m := loadFlat(0x1000, 0x6d, 0x34, 0x12)
	d := decode(t, m, 0x1000, cpu.Registers{})

	if d.Name() != "ADC" {
		t.Errorf("name incorrect. exp: ADC, got: %s", d.Name())
	}
	if d.Operand.Mode != cpu.ABS || d.Address != 0x1234 || !d.HasAddress {
		t.Errorf("operand incorrect. exp: $1234, got: %v -> $%04X", d.Operand, d.Address)
	}
	if d.Length() != 3 {
		t.Errorf("length incorrect. exp: 3, got: %d", d.Length())
	}
	if d.Cycles != 4 {
		t.Errorf("cycles incorrect. exp: 4, got: %d", d.Cycles)
	}
	if d.Next() != 0x1003 {
		t.Errorf("next incorrect. exp: $1003, got: $%04X", d.Next())
	}
	if s := d.String(); s != "ADC $1234 -> $1234" {
		t.Errorf("string incorrect. exp: %q, got: %q", "ADC $1234 -> $1234", s)
	}
}

func TestDecodePageCrossCycles(t *testing.T) {
	reg := cpu.Registers{X: 1, Y: 1}
	tests := []struct {
		code   []byte
		cycles int
	}{
		{[]byte{0x7d, 0xff, 0x12}, 5}, // ADC $12FF,X
		{[]byte{0x7d, 0x00, 0x12}, 4}, // ADC $1200,X
		{[]byte{0xb9, 0xff, 0x12}, 5}, // LDA $12FF,Y
		{[]byte{0x9d, 0xff, 0x12}, 5}, // STA $12FF,X
		{[]byte{0x1e, 0xff, 0x12}, 7}, // ASL $12FF,X
		{[]byte{0xb1, 0x10}, 6},       // LDA ($10),Y
		{[]byte{0x91, 0x10}, 6},       // STA ($10),Y
	}

	for _, tt := range tests {
		m := loadFlat(0x2000, tt.code...)
		m.Set(0x0010, 0xff)
		m.Set(0x0011, 0x30)
		d := decode(t, m, 0x2000, reg)
		if d.Cycles != tt.cycles {
			t.Errorf("%s cycles incorrect. exp: %d, got: %d", d.String(), tt.cycles, d.Cycles)
		}
	}
}

func TestDecodeBranch(t *testing.T) {
	m := loadFlat(0x1000, 0xf0, 0xfe)
	d := decode(t, m, 0x1000, cpu.Registers{})
	if d.HasAddress || d.Offset != -2 {
		t.Errorf("branch resolution incorrect: %+v", d.Resolution)
	}
	if s := d.String(); s != "BEQ $FE -> $1000" {
		t.Errorf("string incorrect. exp: %q, got: %q", "BEQ $FE -> $1000", s)
	}
}

func TestDecodeFetchOrder(t *testing.T) {
	m := loadFlat(0x2000, 0xb1, 0x10)
	tr := bus.NewTrace(m)

	decode(t, tr, 0x2000, cpu.Registers{})

	exp := []struct {
		op   bus.Op
		addr uint16
	}{
		{bus.OpGet, 0x2000},
		{bus.OpGet, 0x2001},
		{bus.OpGetPointer, 0x0010},
	}
	log := tr.Accesses()
	if len(log) != len(exp) {
		t.Fatalf("access count incorrect. exp: %d, got: %d (%v)", len(exp), len(log), log)
	}
	for i, e := range exp {
		if log[i].Op != e.op || log[i].Addr != e.addr {
			t.Errorf("access %d incorrect. exp: %v $%04X, got: %v", i, e.op, e.addr, log[i])
		}
	}
}

func TestDecodeReadsOnlyInstruction(t *testing.T) {
	m := loadFlat(0x2000, 0x8d, 0x00, 0x40) // STA $4000
	tr := bus.NewTrace(m)

	decode(t, tr, 0x2000, cpu.Registers{})
	for _, a := range tr.Accesses() {
		if a.Op != bus.OpGet {
			t.Errorf("decoder performed %v", a)
		}
		if a.Addr < 0x2000 || a.Addr > 0x2002 {
			t.Errorf("decoder touched $%04X", a.Addr)
		}
	}
}

func TestFetchOperandWraps(t *testing.T) {
	m := bus.NewFlatMemory()
	m.Set(0x0000, 0x34)
	m.Set(0x0001, 0x12)
	tr := bus.NewTrace(m)

	op, err := cpu.FetchOperand(tr, 0xffff, cpu.ABS)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if op.Raw != 0x1234 {
		t.Errorf("operand incorrect. exp: $1234, got: $%04X", op.Raw)
	}
	log := tr.Accesses()
	if len(log) != 2 || log[0].Addr != 0x0000 || log[1].Addr != 0x0001 {
		t.Errorf("operand reads incorrect: %v", log)
	}
}

func TestDecodeErrors(t *testing.T) {
	newSystem := func() (*bus.SystemMemory, *bus.RAM) {
		m := bus.NewSystemMemory()
		ram := bus.NewRAM(0x0000, 0x0400)
		m.AddBank(ram)
		m.ActivateBank(ram, bus.ReadWrite)
		return m, ram
	}

	t.Run("OutOfBounds", func(t *testing.T) {
		m, _ := newSystem()
		_, err := cpu.NewDecoder(m).DecodeAt(0x8000, cpu.Registers{})
		expectError(t, err, bus.OutOfBounds, 0)
	})

	t.Run("Unavailable", func(t *testing.T) {
		m, _ := newSystem()
		rom := bus.NewROM(0xf000, make([]byte, 0x1000))
		m.AddBank(rom)
		_, err := cpu.NewDecoder(m).DecodeAt(0xf000, cpu.Registers{})
		expectError(t, err, bus.Unavailable, 0xf000)
	})

	t.Run("OperandUnavailable", func(t *testing.T) {
		m, _ := newSystem()
		extra := bus.NewRAM(0x0400, 0x0100)
		m.AddBank(extra)
		m.SetWindow(0x03fe, []byte{0xea, 0xad}) // NOP; LDA abs
		_, err := cpu.NewDecoder(m).DecodeAt(0x03ff, cpu.Registers{})
		expectError(t, err, bus.Unavailable, 0x0400)
	})

	t.Run("WriteOnly", func(t *testing.T) {
		m, _ := newSystem()
		port := bus.NewPort(0xd000, 0x100, nil, func(uint16, byte) error { return nil })
		m.AddBank(port)
		m.ActivateBank(port, bus.Write)
		m.SetWindow(0x0200, []byte{0x6c, 0x00, 0xd0}) // JMP ($D000)
		_, err := cpu.NewDecoder(m).DecodeAt(0x0200, cpu.Registers{})
		expectError(t, err, bus.WriteOnly, 0xd000)
	})

	t.Run("Halt", func(t *testing.T) {
		m, _ := newSystem()
		trap := bus.NewTrap(0xff00, 0x100)
		m.AddBank(trap)
		m.ActivateBank(trap, bus.ReadWrite)
		m.SetWindow(0x0200, []byte{0x6c, 0x10, 0xff}) // JMP ($FF10)
		_, err := cpu.NewDecoder(m).DecodeAt(0x0200, cpu.Registers{})
		expectError(t, err, bus.Halt, 0xff10)
	})
}

func TestDecodeErrorsUnchanged(t *testing.T) {
	errs := []error{
		bus.ErrUnavailable(0x0300),
		bus.ErrReadOnly(0x0300),
		bus.ErrWriteOnly(0x0300),
		bus.ErrHalt(0x0300),
		bus.ErrOutOfBounds(),
	}

	for _, want := range errs {
		m := bus.NewSystemMemory()
		ram := bus.NewRAM(0x0000, 0x0300)
		m.AddBank(ram)
		m.ActivateBank(ram, bus.ReadWrite)
		port := bus.NewPort(0x0300, 0x100, func(uint16) (byte, error) { return 0, want }, nil)
		m.AddBank(port)
		m.ActivateBank(port, bus.Read)
		m.SetWindow(0x0200, []byte{0x6c, 0x00, 0x03}) // JMP ($0300)

		c := cpu.NewCPU(m, nil)
		c.Reg = cpu.Registers{A: 0x11, X: 0x22, Y: 0x33, SP: 0xf0, PC: 0x0200, PS: cpu.Carry}
		before := c.Reg

		d, err := c.Step()
		if err != want {
			t.Errorf("error not propagated unchanged. exp: %v, got: %v", want, err)
		}
		if d != nil {
			t.Errorf("failed step returned an instruction")
		}
		if c.Reg != before {
			t.Errorf("registers modified. exp: %v, got: %v", before, c.Reg)
		}
		if c.Cycles != 0 {
			t.Errorf("cycles modified. exp: 0, got: %d", c.Cycles)
		}
	}
}
