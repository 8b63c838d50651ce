package cpu_test

import (
	"testing"

	"github.com/beevik/op65/cpu"
)

func TestInstructionTableTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		inst := cpu.Lookup(byte(i))
		if inst == nil || inst.Name == "" {
			t.Fatalf("opcode $%02X has no instruction", i)
		}
		if int(inst.Opcode) != i {
			t.Errorf("opcode $%02X stored as $%02X", i, inst.Opcode)
		}
		if inst.Length < 1 || inst.Length > 3 {
			t.Errorf("opcode $%02X length incorrect: %d", i, inst.Length)
		}
		if inst.Cycles < 2 {
			t.Errorf("opcode $%02X cycles incorrect: %d", i, inst.Cycles)
		}
		if int(inst.Length) != inst.Mode.OperandLength()+1 {
			t.Errorf("opcode $%02X length %d does not match mode %v", i, inst.Length, inst.Mode)
		}
		if inst.BPCycles != 0 {
			switch inst.Mode {
			case cpu.ABX, cpu.ABY, cpu.IDY:
			default:
				t.Errorf("opcode $%02X has page penalty in mode %v", i, inst.Mode)
			}
		}
	}
}

func TestInstructionEntries(t *testing.T) {
	tests := []struct {
		opcode   byte
		name     string
		mode     cpu.Mode
		length   byte
		cycles   byte
		bpcycles byte
	}{
		{0x6d, "ADC", cpu.ABS, 3, 4, 0},
		{0x7d, "ADC", cpu.ABX, 3, 4, 1},
		{0x71, "ADC", cpu.IDY, 2, 5, 1},
		{0x9d, "STA", cpu.ABX, 3, 5, 0},
		{0x91, "STA", cpu.IDY, 2, 6, 0},
		{0x6c, "JMP", cpu.IND, 3, 5, 0},
		{0x0a, "ASL", cpu.ACC, 1, 2, 0},
		{0x1e, "ASL", cpu.ABX, 3, 7, 0},
		{0xb6, "LDX", cpu.ZPY, 2, 4, 0},
		{0xbe, "LDX", cpu.ABY, 3, 4, 1},
		{0xf0, "BEQ", cpu.REL, 2, 2, 0},
		{0x00, "BRK", cpu.IMP, 1, 7, 0},
		{0xa7, "LAX", cpu.ZPG, 2, 3, 0},
		{0xb3, "LAX", cpu.IDY, 2, 5, 1},
		{0x97, "SAX", cpu.ZPY, 2, 4, 0},
		{0xc3, "DCP", cpu.IDX, 2, 8, 0},
		{0xdb, "DCP", cpu.ABY, 3, 7, 0},
		{0x80, "SKB", cpu.IMM, 2, 2, 0},
		{0xfc, "IGN", cpu.ABX, 3, 4, 1},
		{0xeb, "SBC", cpu.IMM, 2, 2, 0},
		{0x9c, "SHY", cpu.ABX, 3, 5, 0},
		{0x9e, "SHX", cpu.ABY, 3, 5, 0},
		{0x02, "KIL", cpu.IMP, 1, 2, 0},
	}

	for _, tt := range tests {
		inst := cpu.Lookup(tt.opcode)
		if inst.Name != tt.name || inst.Mode != tt.mode || inst.Length != tt.length ||
			inst.Cycles != tt.cycles || inst.BPCycles != tt.bpcycles {
			t.Errorf("opcode $%02X incorrect. exp: %s %v %d %d %d, got: %s %v %d %d %d",
				tt.opcode, tt.name, tt.mode, tt.length, tt.cycles, tt.bpcycles,
				inst.Name, inst.Mode, inst.Length, inst.Cycles, inst.BPCycles)
		}
	}
}

func TestInstructionVariants(t *testing.T) {
	adc := cpu.Instructions("adc")
	if len(adc) != 8 {
		t.Errorf("ADC variants incorrect. exp: 8, got: %d", len(adc))
	}
	for i := 1; i < len(adc); i++ {
		if adc[i-1].Opcode >= adc[i].Opcode {
			t.Errorf("ADC variants not ordered by opcode")
		}
	}

	kil := cpu.Instructions("KIL")
	if len(kil) != 12 {
		t.Errorf("KIL variants incorrect. exp: 12, got: %d", len(kil))
	}
	for _, inst := range kil {
		if !inst.Halts || !inst.Undocumented {
			t.Errorf("KIL $%02X not flagged as halting and undocumented", inst.Opcode)
		}
	}

	documented, halting := 0, 0
	for i := 0; i < 256; i++ {
		inst := cpu.Lookup(byte(i))
		if !inst.Undocumented {
			documented++
		}
		if inst.Halts {
			halting++
			if inst.Name != "KIL" {
				t.Errorf("opcode $%02X halts but is %s", i, inst.Name)
			}
		}
	}
	if documented != 151 {
		t.Errorf("documented opcodes incorrect. exp: 151, got: %d", documented)
	}
	if halting != 12 {
		t.Errorf("halting opcodes incorrect. exp: 12, got: %d", halting)
	}

	if cpu.Instructions("XYZ") != nil {
		t.Error("unknown mnemonic returned variants")
	}

	names := cpu.Mnemonics()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("mnemonics not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}
