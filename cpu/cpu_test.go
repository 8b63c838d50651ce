package cpu_test

import (
	"errors"
	"testing"

	"github.com/beevik/op65/bus"
	"github.com/beevik/op65/cpu"
)

// A small executor covering just enough instructions to drive the CPU
// through the tests below.
func testExecutor(c *cpu.CPU, d *cpu.Decoded) error {
	switch d.Name() {
	case "LDA":
		if d.Operand.Mode == cpu.IMM {
			c.Reg.A = d.Value
		} else {
			v, err := c.Bus.Get(d.Address)
			if err != nil {
				return err
			}
			c.Reg.A = v
		}
		c.Reg.SetStatus(cpu.Zero, c.Reg.A == 0)
		c.Reg.SetStatus(cpu.Negative, c.Reg.A&0x80 != 0)
	case "STA":
		return c.StoreByte(d.Address, c.Reg.A)
	case "INX":
		c.Reg.X++
	case "JMP":
		c.Reg.PC = d.Address
	case "BNE":
		if !c.Reg.PS.IsSet(cpu.Zero) {
			c.Reg.PC = d.BranchTarget(c.Reg.PC)
		}
	}
	return nil
}

func newTestCPU(code ...byte) *cpu.CPU {
	m := bus.NewFlatMemory()
	m.SetWindow(0x1000, code)
	c := cpu.NewCPU(m, cpu.ExecutorFunc(testExecutor))
	c.SetPC(0x1000)
	return c
}

func stepCPU(t *testing.T, c *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d at $%04X failed: %v", i, c.Reg.PC, err)
		}
	}
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func TestStepWithoutExecutor(t *testing.T) {
	m := bus.NewFlatMemory()
	m.SetWindow(0x1000, []byte{0xa9, 0x01, 0xea, 0x4c, 0x00, 0x10})
	c := cpu.NewCPU(m, nil)
	c.SetPC(0x1000)

	stepCPU(t, c, 1)
	expectPC(t, c, 0x1002)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1003)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1006)
	expectCycles(t, c, 7)

	if c.Reg.A != 0 {
		t.Errorf("A modified without an executor: $%02X", c.Reg.A)
	}
	if c.LastPC != 0x1003 {
		t.Errorf("LastPC incorrect. exp: $1003, got: $%04X", c.LastPC)
	}
}

func TestStepWithExecutor(t *testing.T) {
	c := newTestCPU(
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x20, // STA $2000
		0xe8,             // INX
		0x4c, 0x05, 0x10, // JMP $1005
	)

	stepCPU(t, c, 2)
	if v, _ := c.Bus.Get(0x2000); v != 0x05 {
		t.Errorf("stored value incorrect. exp: $05, got: $%02X", v)
	}

	stepCPU(t, c, 5)
	if c.Reg.X != 3 {
		t.Errorf("X incorrect. exp: 3, got: %d", c.Reg.X)
	}
	expectPC(t, c, 0x1006)
	expectCycles(t, c, 2+4+3*2+2*3)
}

func TestStepBranch(t *testing.T) {
	c := newTestCPU(
		0xa9, 0x01, // LDA #$01
		0xd0, 0xfc, // BNE $1000
	)

	d, err := c.Step()
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if d.Name() != "LDA" || d.Value != 0x01 {
		t.Errorf("decoded instruction incorrect: %v", d)
	}
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1000)
}

func TestStepExecutorError(t *testing.T) {
	m := bus.NewSystemMemory()
	ram := bus.NewRAM(0x1000, 0x100)
	m.AddBank(ram)
	m.ActivateBank(ram, bus.ReadWrite)
	rom := bus.NewROM(0xf000, make([]byte, 0x1000))
	m.AddBank(rom)
	m.ActivateBank(rom, bus.Read)
	m.SetWindow(0x1000, []byte{0x8d, 0x00, 0xf0}) // STA $F000

	c := cpu.NewCPU(m, cpu.ExecutorFunc(testExecutor))
	c.SetPC(0x1000)

	d, err := c.Step()
	expectError(t, err, bus.ReadOnly, 0xf000)
	if d == nil || d.Name() != "STA" {
		t.Errorf("failed step did not return its instruction")
	}
	if !errors.Is(err, bus.ErrKindReadOnly) {
		t.Errorf("error does not match ErrKindReadOnly")
	}
}

func TestHalt(t *testing.T) {
	c := newTestCPU(0xea, 0x02, 0xea)

	stepCPU(t, c, 1)
	d, err := c.Step()
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if !d.Halts() || !c.Halted {
		t.Fatalf("KIL did not halt the CPU")
	}
	expectPC(t, c, 0x1001)
	expectCycles(t, c, 4)

	d, err = c.Step()
	if d != nil || err != nil {
		t.Errorf("halted CPU stepped: %v, %v", d, err)
	}
	expectPC(t, c, 0x1001)

	c.Reset(0x1002)
	if c.Halted {
		t.Error("Reset did not clear halt")
	}
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1003)
}

type breakpointRecorder struct {
	exec []uint16
	data []uint16
}

func (r *breakpointRecorder) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	r.exec = append(r.exec, b.Address)
}

func (r *breakpointRecorder) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	r.data = append(r.data, b.Address)
}

func TestBreakpoints(t *testing.T) {
	c := newTestCPU(
		0xe8,             // INX
		0xe8,             // INX
		0xe8,             // INX
		0x4c, 0x00, 0x10, // JMP $1000
	)

	rec := &breakpointRecorder{}
	dbg := cpu.NewDebugger(rec)
	c.AttachDebugger(dbg)

	dbg.AddBreakpoint(0x1002)
	dbg.AddBreakpoint(0x1000)
	b := dbg.AddBreakpoint(0x1001)
	b.Disabled = true

	stepCPU(t, c, 4)
	if len(rec.exec) != 2 || rec.exec[0] != 0x1002 || rec.exec[1] != 0x1000 {
		t.Errorf("breakpoint hits incorrect: %v", rec.exec)
	}

	bps := dbg.GetBreakpoints()
	if len(bps) != 3 || bps[0].Address != 0x1000 || bps[2].Address != 0x1002 {
		t.Errorf("breakpoints not ordered by address")
	}

	dbg.RemoveBreakpoint(0x1002)
	if dbg.GetBreakpoint(0x1002) != nil {
		t.Error("breakpoint not removed")
	}

	c.DetachDebugger()
	stepCPU(t, c, 4)
	if len(rec.exec) != 2 {
		t.Errorf("detached debugger still notified: %v", rec.exec)
	}
}

func TestDataBreakpoints(t *testing.T) {
	c := newTestCPU(
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0x20, // STA $2000
		0x8d, 0x01, 0x20, // STA $2001
		0xa9, 0x02, // LDA #$02
		0x8d, 0x01, 0x20, // STA $2001
	)

	rec := &breakpointRecorder{}
	dbg := cpu.NewDebugger(rec)
	c.AttachDebugger(dbg)

	dbg.AddDataBreakpoint(0x2000)
	dbg.AddConditionalDataBreakpoint(0x2001, 0x02)

	stepCPU(t, c, 5)
	if len(rec.data) != 2 || rec.data[0] != 0x2000 || rec.data[1] != 0x2001 {
		t.Errorf("data breakpoint hits incorrect: %v", rec.data)
	}

	if dbs := dbg.GetDataBreakpoints(); len(dbs) != 2 || !dbs[1].Conditional {
		t.Errorf("data breakpoints incorrect")
	}
	dbg.RemoveDataBreakpoint(0x2000)
	if dbg.GetDataBreakpoint(0x2000) != nil {
		t.Error("data breakpoint not removed")
	}
}

func TestRegisterStrings(t *testing.T) {
	var reg cpu.Registers
	reg.Init()
	if s := reg.String(); s != "A=00 X=00 Y=00 PS=[nvUbdizc] SP=FF PC=0000" {
		t.Errorf("register string incorrect: %q", s)
	}

	reg.SetStatus(cpu.Carry|cpu.Negative, true)
	if s := reg.PS.String(); s != "NvUbdizC" {
		t.Errorf("status string incorrect. exp: %q, got: %q", "NvUbdizC", s)
	}
	if !reg.PS.IsSet(cpu.Carry | cpu.Negative) {
		t.Error("status bits not set")
	}

	reg.SetStatus(cpu.Negative, false)
	if reg.PS.IsSet(cpu.Negative) || !reg.PS.IsSet(cpu.Carry) {
		t.Errorf("status bits incorrect: %v", reg.PS)
	}

	reg.SP = 0x80
	if addr := reg.StackAddress(); addr != 0x0180 {
		t.Errorf("stack address incorrect. exp: $0180, got: $%04X", addr)
	}
}

func TestModeStrings(t *testing.T) {
	if s := cpu.IDX.String(); s != "IndexedIndirect" {
		t.Errorf("mode string incorrect: %q", s)
	}
	if cpu.ACC.HasAddress() || !cpu.IDY.HasAddress() {
		t.Error("mode address classification incorrect")
	}
}
