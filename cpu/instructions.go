// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"sort"
	"strings"
)

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Opcode       byte   // hexadecimal opcode value
	Name         string // all-caps name of the instruction
	Mode         Mode   // addressing mode
	Length       byte   // combined size of opcode and operand, in bytes
	Cycles       byte   // number of CPU cycles to execute the instruction
	BPCycles     byte   // additional cycles required if boundary page crossed
	Undocumented bool   // not part of the documented NMOS instruction set
	Halts        bool   // jams the processor (KIL)
}

// Lookup retrieves the CPU instruction corresponding to the requested
// opcode. Every opcode has an instruction.
func Lookup(opcode byte) *Instruction {
	return &instructions[opcode]
}

// Instructions returns all CPU instructions whose name matches the
// provided string, ordered by opcode.
func Instructions(name string) []*Instruction {
	return variants[strings.ToUpper(name)]
}

// Mnemonics returns the sorted list of all instruction names.
func Mnemonics() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants of each instruction, keyed by name.
var variants = make(map[string][]*Instruction)

func init() {
	for i := range instructions {
		inst := &instructions[i]
		variants[inst.Name] = append(variants[inst.Name], inst)
	}
}

// All 256 opcodes of the NMOS 6502, indexed by opcode. Undocumented
// opcodes follow the names used by the NESdev and oxyron references:
// SKB is a two-byte immediate NOP, IGN a NOP that performs a dummy read,
// and KIL jams the processor.
var instructions = [256]Instruction{
	0x00: {0x00, "BRK", IMP, 1, 7, 0, false, false},
	0x01: {0x01, "ORA", IDX, 2, 6, 0, false, false},
	0x02: {0x02, "KIL", IMP, 1, 2, 0, true, true},
	0x03: {0x03, "SLO", IDX, 2, 8, 0, true, false},
	0x04: {0x04, "IGN", ZPG, 2, 3, 0, true, false},
	0x05: {0x05, "ORA", ZPG, 2, 3, 0, false, false},
	0x06: {0x06, "ASL", ZPG, 2, 5, 0, false, false},
	0x07: {0x07, "SLO", ZPG, 2, 5, 0, true, false},
	0x08: {0x08, "PHP", IMP, 1, 3, 0, false, false},
	0x09: {0x09, "ORA", IMM, 2, 2, 0, false, false},
	0x0a: {0x0a, "ASL", ACC, 1, 2, 0, false, false},
	0x0b: {0x0b, "ANC", IMM, 2, 2, 0, true, false},
	0x0c: {0x0c, "IGN", ABS, 3, 4, 0, true, false},
	0x0d: {0x0d, "ORA", ABS, 3, 4, 0, false, false},
	0x0e: {0x0e, "ASL", ABS, 3, 6, 0, false, false},
	0x0f: {0x0f, "SLO", ABS, 3, 6, 0, true, false},
	0x10: {0x10, "BPL", REL, 2, 2, 0, false, false},
	0x11: {0x11, "ORA", IDY, 2, 5, 1, false, false},
	0x12: {0x12, "KIL", IMP, 1, 2, 0, true, true},
	0x13: {0x13, "SLO", IDY, 2, 8, 0, true, false},
	0x14: {0x14, "IGN", ZPX, 2, 4, 0, true, false},
	0x15: {0x15, "ORA", ZPX, 2, 4, 0, false, false},
	0x16: {0x16, "ASL", ZPX, 2, 6, 0, false, false},
	0x17: {0x17, "SLO", ZPX, 2, 6, 0, true, false},
	0x18: {0x18, "CLC", IMP, 1, 2, 0, false, false},
	0x19: {0x19, "ORA", ABY, 3, 4, 1, false, false},
	0x1a: {0x1a, "NOP", IMP, 1, 2, 0, true, false},
	0x1b: {0x1b, "SLO", ABY, 3, 7, 0, true, false},
	0x1c: {0x1c, "IGN", ABX, 3, 4, 1, true, false},
	0x1d: {0x1d, "ORA", ABX, 3, 4, 1, false, false},
	0x1e: {0x1e, "ASL", ABX, 3, 7, 0, false, false},
	0x1f: {0x1f, "SLO", ABX, 3, 7, 0, true, false},
	0x20: {0x20, "JSR", ABS, 3, 6, 0, false, false},
	0x21: {0x21, "AND", IDX, 2, 6, 0, false, false},
	0x22: {0x22, "KIL", IMP, 1, 2, 0, true, true},
	0x23: {0x23, "RLA", IDX, 2, 8, 0, true, false},
	0x24: {0x24, "BIT", ZPG, 2, 3, 0, false, false},
	0x25: {0x25, "AND", ZPG, 2, 3, 0, false, false},
	0x26: {0x26, "ROL", ZPG, 2, 5, 0, false, false},
	0x27: {0x27, "RLA", ZPG, 2, 5, 0, true, false},
	0x28: {0x28, "PLP", IMP, 1, 4, 0, false, false},
	0x29: {0x29, "AND", IMM, 2, 2, 0, false, false},
	0x2a: {0x2a, "ROL", ACC, 1, 2, 0, false, false},
	0x2b: {0x2b, "ANC", IMM, 2, 2, 0, true, false},
	0x2c: {0x2c, "BIT", ABS, 3, 4, 0, false, false},
	0x2d: {0x2d, "AND", ABS, 3, 4, 0, false, false},
	0x2e: {0x2e, "ROL", ABS, 3, 6, 0, false, false},
	0x2f: {0x2f, "RLA", ABS, 3, 6, 0, true, false},
	0x30: {0x30, "BMI", REL, 2, 2, 0, false, false},
	0x31: {0x31, "AND", IDY, 2, 5, 1, false, false},
	0x32: {0x32, "KIL", IMP, 1, 2, 0, true, true},
	0x33: {0x33, "RLA", IDY, 2, 8, 0, true, false},
	0x34: {0x34, "IGN", ZPX, 2, 4, 0, true, false},
	0x35: {0x35, "AND", ZPX, 2, 4, 0, false, false},
	0x36: {0x36, "ROL", ZPX, 2, 6, 0, false, false},
	0x37: {0x37, "RLA", ZPX, 2, 6, 0, true, false},
	0x38: {0x38, "SEC", IMP, 1, 2, 0, false, false},
	0x39: {0x39, "AND", ABY, 3, 4, 1, false, false},
	0x3a: {0x3a, "NOP", IMP, 1, 2, 0, true, false},
	0x3b: {0x3b, "RLA", ABY, 3, 7, 0, true, false},
	0x3c: {0x3c, "IGN", ABX, 3, 4, 1, true, false},
	0x3d: {0x3d, "AND", ABX, 3, 4, 1, false, false},
	0x3e: {0x3e, "ROL", ABX, 3, 7, 0, false, false},
	0x3f: {0x3f, "RLA", ABX, 3, 7, 0, true, false},
	0x40: {0x40, "RTI", IMP, 1, 6, 0, false, false},
	0x41: {0x41, "EOR", IDX, 2, 6, 0, false, false},
	0x42: {0x42, "KIL", IMP, 1, 2, 0, true, true},
	0x43: {0x43, "SRE", IDX, 2, 8, 0, true, false},
	0x44: {0x44, "IGN", ZPG, 2, 3, 0, true, false},
	0x45: {0x45, "EOR", ZPG, 2, 3, 0, false, false},
	0x46: {0x46, "LSR", ZPG, 2, 5, 0, false, false},
	0x47: {0x47, "SRE", ZPG, 2, 5, 0, true, false},
	0x48: {0x48, "PHA", IMP, 1, 3, 0, false, false},
	0x49: {0x49, "EOR", IMM, 2, 2, 0, false, false},
	0x4a: {0x4a, "LSR", ACC, 1, 2, 0, false, false},
	0x4b: {0x4b, "ALR", IMM, 2, 2, 0, true, false},
	0x4c: {0x4c, "JMP", ABS, 3, 3, 0, false, false},
	0x4d: {0x4d, "EOR", ABS, 3, 4, 0, false, false},
	0x4e: {0x4e, "LSR", ABS, 3, 6, 0, false, false},
	0x4f: {0x4f, "SRE", ABS, 3, 6, 0, true, false},
	0x50: {0x50, "BVC", REL, 2, 2, 0, false, false},
	0x51: {0x51, "EOR", IDY, 2, 5, 1, false, false},
	0x52: {0x52, "KIL", IMP, 1, 2, 0, true, true},
	0x53: {0x53, "SRE", IDY, 2, 8, 0, true, false},
	0x54: {0x54, "IGN", ZPX, 2, 4, 0, true, false},
	0x55: {0x55, "EOR", ZPX, 2, 4, 0, false, false},
	0x56: {0x56, "LSR", ZPX, 2, 6, 0, false, false},
	0x57: {0x57, "SRE", ZPX, 2, 6, 0, true, false},
	0x58: {0x58, "CLI", IMP, 1, 2, 0, false, false},
	0x59: {0x59, "EOR", ABY, 3, 4, 1, false, false},
	0x5a: {0x5a, "NOP", IMP, 1, 2, 0, true, false},
	0x5b: {0x5b, "SRE", ABY, 3, 7, 0, true, false},
	0x5c: {0x5c, "IGN", ABX, 3, 4, 1, true, false},
	0x5d: {0x5d, "EOR", ABX, 3, 4, 1, false, false},
	0x5e: {0x5e, "LSR", ABX, 3, 7, 0, false, false},
	0x5f: {0x5f, "SRE", ABX, 3, 7, 0, true, false},
	0x60: {0x60, "RTS", IMP, 1, 6, 0, false, false},
	0x61: {0x61, "ADC", IDX, 2, 6, 0, false, false},
	0x62: {0x62, "KIL", IMP, 1, 2, 0, true, true},
	0x63: {0x63, "RRA", IDX, 2, 8, 0, true, false},
	0x64: {0x64, "IGN", ZPG, 2, 3, 0, true, false},
	0x65: {0x65, "ADC", ZPG, 2, 3, 0, false, false},
	0x66: {0x66, "ROR", ZPG, 2, 5, 0, false, false},
	0x67: {0x67, "RRA", ZPG, 2, 5, 0, true, false},
	0x68: {0x68, "PLA", IMP, 1, 4, 0, false, false},
	0x69: {0x69, "ADC", IMM, 2, 2, 0, false, false},
	0x6a: {0x6a, "ROR", ACC, 1, 2, 0, false, false},
	0x6b: {0x6b, "ARR", IMM, 2, 2, 0, true, false},
	0x6c: {0x6c, "JMP", IND, 3, 5, 0, false, false},
	0x6d: {0x6d, "ADC", ABS, 3, 4, 0, false, false},
	0x6e: {0x6e, "ROR", ABS, 3, 6, 0, false, false},
	0x6f: {0x6f, "RRA", ABS, 3, 6, 0, true, false},
	0x70: {0x70, "BVS", REL, 2, 2, 0, false, false},
	0x71: {0x71, "ADC", IDY, 2, 5, 1, false, false},
	0x72: {0x72, "KIL", IMP, 1, 2, 0, true, true},
	0x73: {0x73, "RRA", IDY, 2, 8, 0, true, false},
	0x74: {0x74, "IGN", ZPX, 2, 4, 0, true, false},
	0x75: {0x75, "ADC", ZPX, 2, 4, 0, false, false},
	0x76: {0x76, "ROR", ZPX, 2, 6, 0, false, false},
	0x77: {0x77, "RRA", ZPX, 2, 6, 0, true, false},
	0x78: {0x78, "SEI", IMP, 1, 2, 0, false, false},
	0x79: {0x79, "ADC", ABY, 3, 4, 1, false, false},
	0x7a: {0x7a, "NOP", IMP, 1, 2, 0, true, false},
	0x7b: {0x7b, "RRA", ABY, 3, 7, 0, true, false},
	0x7c: {0x7c, "IGN", ABX, 3, 4, 1, true, false},
	0x7d: {0x7d, "ADC", ABX, 3, 4, 1, false, false},
	0x7e: {0x7e, "ROR", ABX, 3, 7, 0, false, false},
	0x7f: {0x7f, "RRA", ABX, 3, 7, 0, true, false},
	0x80: {0x80, "SKB", IMM, 2, 2, 0, true, false},
	0x81: {0x81, "STA", IDX, 2, 6, 0, false, false},
	0x82: {0x82, "SKB", IMM, 2, 2, 0, true, false},
	0x83: {0x83, "SAX", IDX, 2, 6, 0, true, false},
	0x84: {0x84, "STY", ZPG, 2, 3, 0, false, false},
	0x85: {0x85, "STA", ZPG, 2, 3, 0, false, false},
	0x86: {0x86, "STX", ZPG, 2, 3, 0, false, false},
	0x87: {0x87, "SAX", ZPG, 2, 3, 0, true, false},
	0x88: {0x88, "DEY", IMP, 1, 2, 0, false, false},
	0x89: {0x89, "SKB", IMM, 2, 2, 0, true, false},
	0x8a: {0x8a, "TXA", IMP, 1, 2, 0, false, false},
	0x8b: {0x8b, "XAA", IMM, 2, 2, 0, true, false},
	0x8c: {0x8c, "STY", ABS, 3, 4, 0, false, false},
	0x8d: {0x8d, "STA", ABS, 3, 4, 0, false, false},
	0x8e: {0x8e, "STX", ABS, 3, 4, 0, false, false},
	0x8f: {0x8f, "SAX", ABS, 3, 4, 0, true, false},
	0x90: {0x90, "BCC", REL, 2, 2, 0, false, false},
	0x91: {0x91, "STA", IDY, 2, 6, 0, false, false},
	0x92: {0x92, "KIL", IMP, 1, 2, 0, true, true},
	0x93: {0x93, "SHA", IDY, 2, 6, 0, true, false},
	0x94: {0x94, "STY", ZPX, 2, 4, 0, false, false},
	0x95: {0x95, "STA", ZPX, 2, 4, 0, false, false},
	0x96: {0x96, "STX", ZPY, 2, 4, 0, false, false},
	0x97: {0x97, "SAX", ZPY, 2, 4, 0, true, false},
	0x98: {0x98, "TYA", IMP, 1, 2, 0, false, false},
	0x99: {0x99, "STA", ABY, 3, 5, 0, false, false},
	0x9a: {0x9a, "TXS", IMP, 1, 2, 0, false, false},
	0x9b: {0x9b, "TAS", ABY, 3, 5, 0, true, false},
	0x9c: {0x9c, "SHY", ABX, 3, 5, 0, true, false},
	0x9d: {0x9d, "STA", ABX, 3, 5, 0, false, false},
	0x9e: {0x9e, "SHX", ABY, 3, 5, 0, true, false},
	0x9f: {0x9f, "SHA", ABY, 3, 5, 0, true, false},
	0xa0: {0xa0, "LDY", IMM, 2, 2, 0, false, false},
	0xa1: {0xa1, "LDA", IDX, 2, 6, 0, false, false},
	0xa2: {0xa2, "LDX", IMM, 2, 2, 0, false, false},
	0xa3: {0xa3, "LAX", IDX, 2, 6, 0, true, false},
	0xa4: {0xa4, "LDY", ZPG, 2, 3, 0, false, false},
	0xa5: {0xa5, "LDA", ZPG, 2, 3, 0, false, false},
	0xa6: {0xa6, "LDX", ZPG, 2, 3, 0, false, false},
	0xa7: {0xa7, "LAX", ZPG, 2, 3, 0, true, false},
	0xa8: {0xa8, "TAY", IMP, 1, 2, 0, false, false},
	0xa9: {0xa9, "LDA", IMM, 2, 2, 0, false, false},
	0xaa: {0xaa, "TAX", IMP, 1, 2, 0, false, false},
	0xab: {0xab, "LXA", IMM, 2, 2, 0, true, false},
	0xac: {0xac, "LDY", ABS, 3, 4, 0, false, false},
	0xad: {0xad, "LDA", ABS, 3, 4, 0, false, false},
	0xae: {0xae, "LDX", ABS, 3, 4, 0, false, false},
	0xaf: {0xaf, "LAX", ABS, 3, 4, 0, true, false},
	0xb0: {0xb0, "BCS", REL, 2, 2, 0, false, false},
	0xb1: {0xb1, "LDA", IDY, 2, 5, 1, false, false},
	0xb2: {0xb2, "KIL", IMP, 1, 2, 0, true, true},
	0xb3: {0xb3, "LAX", IDY, 2, 5, 1, true, false},
	0xb4: {0xb4, "LDY", ZPX, 2, 4, 0, false, false},
	0xb5: {0xb5, "LDA", ZPX, 2, 4, 0, false, false},
	0xb6: {0xb6, "LDX", ZPY, 2, 4, 0, false, false},
	0xb7: {0xb7, "LAX", ZPY, 2, 4, 0, true, false},
	0xb8: {0xb8, "CLV", IMP, 1, 2, 0, false, false},
	0xb9: {0xb9, "LDA", ABY, 3, 4, 1, false, false},
	0xba: {0xba, "TSX", IMP, 1, 2, 0, false, false},
	0xbb: {0xbb, "LAS", ABY, 3, 4, 1, true, false},
	0xbc: {0xbc, "LDY", ABX, 3, 4, 1, false, false},
	0xbd: {0xbd, "LDA", ABX, 3, 4, 1, false, false},
	0xbe: {0xbe, "LDX", ABY, 3, 4, 1, false, false},
	0xbf: {0xbf, "LAX", ABY, 3, 4, 1, true, false},
	0xc0: {0xc0, "CPY", IMM, 2, 2, 0, false, false},
	0xc1: {0xc1, "CMP", IDX, 2, 6, 0, false, false},
	0xc2: {0xc2, "SKB", IMM, 2, 2, 0, true, false},
	0xc3: {0xc3, "DCP", IDX, 2, 8, 0, true, false},
	0xc4: {0xc4, "CPY", ZPG, 2, 3, 0, false, false},
	0xc5: {0xc5, "CMP", ZPG, 2, 3, 0, false, false},
	0xc6: {0xc6, "DEC", ZPG, 2, 5, 0, false, false},
	0xc7: {0xc7, "DCP", ZPG, 2, 5, 0, true, false},
	0xc8: {0xc8, "INY", IMP, 1, 2, 0, false, false},
	0xc9: {0xc9, "CMP", IMM, 2, 2, 0, false, false},
	0xca: {0xca, "DEX", IMP, 1, 2, 0, false, false},
	0xcb: {0xcb, "AXS", IMM, 2, 2, 0, true, false},
	0xcc: {0xcc, "CPY", ABS, 3, 4, 0, false, false},
	0xcd: {0xcd, "CMP", ABS, 3, 4, 0, false, false},
	0xce: {0xce, "DEC", ABS, 3, 6, 0, false, false},
	0xcf: {0xcf, "DCP", ABS, 3, 6, 0, true, false},
	0xd0: {0xd0, "BNE", REL, 2, 2, 0, false, false},
	0xd1: {0xd1, "CMP", IDY, 2, 5, 1, false, false},
	0xd2: {0xd2, "KIL", IMP, 1, 2, 0, true, true},
	0xd3: {0xd3, "DCP", IDY, 2, 8, 0, true, false},
	0xd4: {0xd4, "IGN", ZPX, 2, 4, 0, true, false},
	0xd5: {0xd5, "CMP", ZPX, 2, 4, 0, false, false},
	0xd6: {0xd6, "DEC", ZPX, 2, 6, 0, false, false},
	0xd7: {0xd7, "DCP", ZPX, 2, 6, 0, true, false},
	0xd8: {0xd8, "CLD", IMP, 1, 2, 0, false, false},
	0xd9: {0xd9, "CMP", ABY, 3, 4, 1, false, false},
	0xda: {0xda, "NOP", IMP, 1, 2, 0, true, false},
	0xdb: {0xdb, "DCP", ABY, 3, 7, 0, true, false},
	0xdc: {0xdc, "IGN", ABX, 3, 4, 1, true, false},
	0xdd: {0xdd, "CMP", ABX, 3, 4, 1, false, false},
	0xde: {0xde, "DEC", ABX, 3, 7, 0, false, false},
	0xdf: {0xdf, "DCP", ABX, 3, 7, 0, true, false},
	0xe0: {0xe0, "CPX", IMM, 2, 2, 0, false, false},
	0xe1: {0xe1, "SBC", IDX, 2, 6, 0, false, false},
	0xe2: {0xe2, "SKB", IMM, 2, 2, 0, true, false},
	0xe3: {0xe3, "ISC", IDX, 2, 8, 0, true, false},
	0xe4: {0xe4, "CPX", ZPG, 2, 3, 0, false, false},
	0xe5: {0xe5, "SBC", ZPG, 2, 3, 0, false, false},
	0xe6: {0xe6, "INC", ZPG, 2, 5, 0, false, false},
	0xe7: {0xe7, "ISC", ZPG, 2, 5, 0, true, false},
	0xe8: {0xe8, "INX", IMP, 1, 2, 0, false, false},
	0xe9: {0xe9, "SBC", IMM, 2, 2, 0, false, false},
	0xea: {0xea, "NOP", IMP, 1, 2, 0, false, false},
	0xeb: {0xeb, "SBC", IMM, 2, 2, 0, true, false},
	0xec: {0xec, "CPX", ABS, 3, 4, 0, false, false},
	0xed: {0xed, "SBC", ABS, 3, 4, 0, false, false},
	0xee: {0xee, "INC", ABS, 3, 6, 0, false, false},
	0xef: {0xef, "ISC", ABS, 3, 6, 0, true, false},
	0xf0: {0xf0, "BEQ", REL, 2, 2, 0, false, false},
	0xf1: {0xf1, "SBC", IDY, 2, 5, 1, false, false},
	0xf2: {0xf2, "KIL", IMP, 1, 2, 0, true, true},
	0xf3: {0xf3, "ISC", IDY, 2, 8, 0, true, false},
	0xf4: {0xf4, "IGN", ZPX, 2, 4, 0, true, false},
	0xf5: {0xf5, "SBC", ZPX, 2, 4, 0, false, false},
	0xf6: {0xf6, "INC", ZPX, 2, 6, 0, false, false},
	0xf7: {0xf7, "ISC", ZPX, 2, 6, 0, true, false},
	0xf8: {0xf8, "SED", IMP, 1, 2, 0, false, false},
	0xf9: {0xf9, "SBC", ABY, 3, 4, 1, false, false},
	0xfa: {0xfa, "NOP", IMP, 1, 2, 0, true, false},
	0xfb: {0xfb, "ISC", ABY, 3, 7, 0, true, false},
	0xfc: {0xfc, "IGN", ABX, 3, 4, 1, true, false},
	0xfd: {0xfd, "SBC", ABX, 3, 4, 1, false, false},
	0xfe: {0xfe, "INC", ABX, 3, 7, 0, false, false},
	0xff: {0xff, "ISC", ABX, 3, 7, 0, true, false},
}
