// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runScript(t *testing.T, h *Host, lines ...string) string {
	t.Helper()
	var out strings.Builder
	script := strings.Join(lines, "\n") + "\n"
	if err := h.RunCommands(strings.NewReader(script), &out, false); err != nil {
		t.Fatalf("RunCommands returned error: %v", err)
	}
	return out.String()
}

func expectOutput(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\noutput:\n%s", w, out)
		}
	}
}

func rejectOutput(t *testing.T, out string, reject ...string) {
	t.Helper()
	for _, r := range reject {
		if strings.Contains(out, r) {
			t.Errorf("output unexpectedly contains %q\noutput:\n%s", r, out)
		}
	}
}

func writeImage(t *testing.T, name string, data ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestExpressions(t *testing.T) {
	regs := map[string]int64{"x": 2, "pc": 0x1000}
	lookup := func(name string) (int64, error) {
		if v, ok := regs[name]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("identifier '%s' not found", name)
	}

	tests := []struct {
		expr    string
		hexMode bool
		v       int64
		ok      bool
	}{
		{"10", false, 10, true},
		{"10", true, 0x10, true},
		{"$ff", false, 0xff, true},
		{"0x1234", false, 0x1234, true},
		{"%101", false, 5, true},
		{"0b101", false, 5, true},
		{"0d99", false, 99, true},
		{"70000", false, 70000, true},
		{"1+2*3", false, 7, true},
		{"(1+2)*3", false, 9, true},
		{"10-2-3", false, 5, true},
		{"2*-3", false, -6, true},
		{"-$10+1", false, -15, true},
		{"7%4", false, 3, true},
		{"1<<4|1", false, 0x11, true},
		{"$ff&~$0f", false, 0xf0, true},
		{"$f0^$ff", false, 0x0f, true},
		{"<$1234", false, 0x34, true},
		{">$1234", false, 0x12, true},
		{"'A'+1", false, 0x42, true},
		{"pc+3", false, 0x1003, true},
		{"$1000+x", false, 0x1002, true},
		{"pc+ff", true, 0x10ff, true},
		{"a9", true, 0xa9, true},
		{"x", true, 2, true},
		{"", false, 0, false},
		{"$", false, 0, false},
		{"zz", false, 0, false},
		{"ff", false, 0, false},
		{"12ab", false, 0, false},
		{"1+", false, 0, false},
		{"1 2", false, 0, false},
		{"(1+2", false, 0, false},
		{"1+2)", false, 0, false},
		{"*3", false, 0, false},
		{"1/0", false, 0, false},
		{"1%0", false, 0, false},
		{"'A", false, 0, false},
	}

	p := newExprParser()
	for _, tt := range tests {
		p.hexMode = tt.hexMode
		v, err := p.Parse(tt.expr, lookup)
		if tt.ok {
			if err != nil {
				t.Errorf("Parse(%q) returned error: %v", tt.expr, err)
			} else if v != tt.v {
				t.Errorf("Parse(%q) = %d, expected %d", tt.expr, v, tt.v)
			}
		} else if err == nil {
			t.Errorf("Parse(%q) expected an error, got %d", tt.expr, v)
		}
	}
}

func TestExpressionArguments(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $EA $6D $34 $12",
		"register x 2",
		"register pc $1000",
		"decode pc+1 1",
		"memory dump $1000+x 2",
		"register pc pc+1",
		"register a -1",
		"evaluate (pc+2)*2",
		"evaluate -1",
		"e 'A'",
		"evaluate 1/0",
		"memory dump $1000 -1",
		"register y 256",
		"register pc $10000",
	)
	expectOutput(t, out,
		"1001-   6D 34 12    ADC $1234",
		"1002- 34 12",
		"Register PC set to $1001.",
		"Register A set to $FF.",
		"$2006 (8198)",
		"-$1 (-1)",
		"$0041 (65)",
		"division by zero",
		"count '-1' is negative",
		"Value $100 does not fit in register Y.",
		"address '$10000' is out of range",
	)
}

func TestStepCountBeyondAddressRange(t *testing.T) {
	h := New()
	out := runScript(t, h, "step 70000")
	expectOutput(t, out, "...")
	rejectOutput(t, out, "invalid number")
	if h.cpu.Reg.PC != 0x1170 {
		t.Errorf("PC = $%04X, expected $1170", h.cpu.Reg.PC)
	}
	if h.cpu.Cycles != 70000*7 {
		t.Errorf("Cycles = %d, expected %d", h.cpu.Cycles, 70000*7)
	}
}

func TestMemoryCommands(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $41 $42 $43",
		"memory dump $1000 3",
		"memory copy $2000 $1000 $1002",
		"memory dump $2000 3",
		"memory set $1000 $100",
	)
	expectOutput(t, out,
		"Stored 3 byte(s) at $1000.",
		"1000- 41 42 43",
		"Copied $0003 bytes to $2000.",
		"2000- 41 42 43",
		"value '$100' is not a byte",
	)
}

func TestDecodeCommand(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $6D $34 $12 $BD $FF $12 $F0 $FE",
		"register x 1",
		"decode $1000 3",
	)
	expectOutput(t, out,
		"ADC $1234",
		"EA=$1234 4cy",
		"LDA $12FF,X",
		"EA=$1300 +P 5cy",
		"BEQ $1006",
		"BR=$1006 2cy",
	)
}

func TestDisassembleCommand(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $A9 $01 $8D $00 $20 $EA",
		"disassemble $1000 3",
	)
	expectOutput(t, out,
		"1000-   A9 01       LDA #$01",
		"1002-   8D 00 20    STA $2000",
		"1005-   EA          NOP",
	)
}

func TestOpcodeCommand(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"opcode $6D",
		"opcode $BD",
		"opcode ld",
		"opcode xyz",
	)
	expectOutput(t, out,
		"$6D  ADC  Absolute          3 4",
		"$BD  LDA  AbsoluteX         3 4+",
		"Mnemonic is ambiguous: LDA LDX LDY",
		"Unknown mnemonic 'xyz'.",
	)

	out = runScript(t, New(), "opcode kil")
	if n := strings.Count(out, "halts"); n != 12 {
		t.Errorf("opcode kil listed %d halting entries, expected 12", n)
	}
}

func TestRegisterCommand(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"register a $12",
		"register x 300",
		"register c 1",
		"register pc $0400",
		"register q 1",
		"register",
	)
	expectOutput(t, out,
		"Register A set to $12.",
		"Value $12C does not fit in register X.",
		"Status flag C set to true.",
		"Register PC set to $0400.",
		"Unknown register 'q'.",
		"A=12 X=00 Y=00 PS=[-------C] SP=FF",
	)
	if h.cpu.Reg.PC != 0x0400 {
		t.Errorf("PC = $%04X, expected $0400", h.cpu.Reg.PC)
	}
}

func TestStepUntilHalt(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $A9 $01 $EA $02",
		"register pc $1000",
		"step 10",
		"step",
	)
	expectOutput(t, out,
		"LDA #$01",
		"NOP",
		"CPU halted by KIL at $1003.",
		"CPU is halted. Use reset to continue.",
	)
	if !h.cpu.Halted {
		t.Error("CPU expected to be halted")
	}

	out = runScript(t, h, "reset $1000", "step")
	expectOutput(t, out, "CPU reset with PC=$1000.", "LDA #$01")
	if h.cpu.Reg.PC != 0x1002 {
		t.Errorf("PC = $%04X, expected $1002", h.cpu.Reg.PC)
	}
}

func TestStepTrap(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"bank trap $2000",
		"memory set $1000 $6C $00 $20",
		"register pc $1000",
		"step",
	)
	expectOutput(t, out,
		"Trap mapped at $2000..$20FF.",
		"1000-   halt requested at address $2000",
	)
	if h.cpu.Reg.PC != 0x1000 {
		t.Errorf("PC = $%04X, expected $1000", h.cpu.Reg.PC)
	}
	if h.cpu.Cycles != 0 {
		t.Errorf("Cycles = %d, expected 0", h.cpu.Cycles)
	}
}

func TestStepTraceBus(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"set tracebus true",
		"memory set $1000 $B1 $10",
		"register pc $1000",
		"step",
	)
	expectOutput(t, out,
		"get    $1000 $B1",
		"get    $1001 $10",
		"getptr $0010",
	)
}

func TestBreakpoints(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"memory set $1000 $EA $EA $EA $EA",
		"breakpoint add $1002",
		"register pc $1000",
		"step 4",
		"breakpoint list",
	)
	expectOutput(t, out,
		"Breakpoint added at $1002.",
		"Breakpoint hit at $1002.",
		"$1002 true",
	)
	if h.cpu.Reg.PC != 0x1002 {
		t.Errorf("PC = $%04X, expected $1002", h.cpu.Reg.PC)
	}

	out = runScript(t, h,
		"breakpoint disable $1002",
		"register pc $1000",
		"step 4",
		"breakpoint remove $1002",
		"breakpoint remove $1002",
	)
	expectOutput(t, out,
		"Breakpoint at $1002 disabled.",
		"Breakpoint at $1002 removed.",
		"No breakpoint was set on $1002.",
	)
	rejectOutput(t, out, "Breakpoint hit")
	if h.cpu.Reg.PC != 0x1004 {
		t.Errorf("PC = $%04X, expected $1004", h.cpu.Reg.PC)
	}
}

func TestBankCommands(t *testing.T) {
	path := writeImage(t, "rom.bin", 0x01, 0x02, 0x03)

	h := New()
	out := runScript(t, h,
		"bank rom "+path+" $F000",
		"memory dump $F000 3",
		"memory set $F000 $FF",
		"memory dump $F000 1",
		"bank list",
		"bank rom "+path+" $F001",
	)
	expectOutput(t, out,
		"Mapped 'rom.bin' as ROM at $F000..$F0FF.",
		"F000- 01 02 03",
		"Stored 1 byte(s) at $F000.",
		"F000- 01",
		"$F000-$F0FF  ROM   r-",
		"$0000-$FFFF  RAM   rw",
		"address $F001 is not page-aligned",
	)

	out = runScript(t, h,
		"bank remove $F000",
		"memory dump $F000 1",
		"bank remove $F000",
	)
	expectOutput(t, out,
		"ROM bank at $F000 removed.",
		"F000- FF",
		"No removable bank starts at $F000.",
	)
}

func TestMemorySetIntoTrap(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"bank trap $9000",
		"memory set $8FFF $11 $22",
		"memory dump $8FFF 1",
	)
	expectOutput(t, out,
		"halt requested at address $9000",
		"8FFF- 00",
	)
	rejectOutput(t, out, "Stored")
}

func TestLoadCommand(t *testing.T) {
	path := writeImage(t, "prog.bin", 0xA9, 0x05, 0x00)

	h := New()
	out := runScript(t, h,
		"load "+path+" $0300",
		"disassemble",
	)
	expectOutput(t, out,
		"Loaded 'prog.bin' to $0300..$0302",
		"0300-   A9 05       LDA #$05",
		"0302-   00          BRK",
	)
	if h.cpu.Reg.PC != 0x0300 {
		t.Errorf("PC = $%04X, expected $0300", h.cpu.Reg.PC)
	}
}

func TestSetCommand(t *testing.T) {
	h := New()
	out := runScript(t, h,
		"set hexmode true",
		"memory set 1000 A9",
		"set d 5",
		"set bogus 1",
		"set",
	)
	expectOutput(t, out,
		"Setting updated.",
		"Stored 1 byte(s) at $1000.",
		"setting 'd' is ambiguous",
		"setting 'bogus' not found",
		"HexMode",
	)
	if !h.settings.HexMode {
		t.Error("HexMode expected to be set")
	}
}

func TestCommandLookup(t *testing.T) {
	out := runScript(t, New(),
		"# comment line",
		"frobnicate",
		"help step",
		"memory",
	)
	expectOutput(t, out,
		"Command not found.",
		"step [<count>]",
	)
	rejectOutput(t, out, "comment line")
}

func TestQuit(t *testing.T) {
	var out strings.Builder
	h := New()
	script := "register a 1\nquit\nregister a 2\n"
	err := h.RunCommands(strings.NewReader(script), &out, false)
	if err != ErrQuit {
		t.Errorf("RunCommands returned %v, expected ErrQuit", err)
	}
	if h.cpu.Reg.A != 1 {
		t.Errorf("A = $%02X, expected $01", h.cpu.Reg.A)
	}
}
