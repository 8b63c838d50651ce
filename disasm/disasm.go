// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/op65/bus"
	"github.com/beevik/op65/cpu"
)

// Disassemble the machine code on bus 'b' at address 'addr'. Return a
// 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code. Branch
// targets are shown as absolute addresses. Only the opcode and operand
// bytes are read; pointers are not followed.
func Disassemble(b bus.Bus, addr uint16) (line string, next uint16, err error) {
	opcode, err := b.Get(addr)
	if err != nil {
		return "", addr, err
	}
	inst := cpu.Lookup(opcode)

	op, err := cpu.FetchOperand(b, addr, inst.Mode)
	if err != nil {
		return "", addr, err
	}

	next = addr + uint16(inst.Length)
	switch inst.Mode {
	case cpu.IMP:
		line = inst.Name
	case cpu.REL:
		// Convert relative offset to absolute address.
		target := next + uint16(int16(op.Offset()))
		line = fmt.Sprintf("%s $%04X", inst.Name, target)
	default:
		line = inst.Name + " " + op.String()
	}
	return line, next, nil
}

// RegisterString returns a string describing the contents of the
// 6502 registers, without the program counter.
func RegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X",
		r.A, r.X, r.Y, statusString(r.PS), r.SP)
}

// Status bits from most to least significant, as the hardware documents
// them. The unused bit is always shown as a dash.
func statusString(ps cpu.Status) string {
	const names = "NV-BDIZC"
	var b strings.Builder
	for i := 0; i < 8; i++ {
		c := names[i]
		switch {
		case c == '-':
		case ps&(1<<(7-i)) == 0:
			c = '-'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ResolvedString describes what a decoded instruction resolved to: the
// effective address or branch target, a "+P" marker when indexing
// crossed a page boundary, and the cycle count.
func ResolvedString(d *cpu.Decoded) string {
	var s string
	switch {
	case d.HasAddress:
		s = fmt.Sprintf("EA=$%04X", d.Address)
	case d.Operand.Mode == cpu.REL:
		s = fmt.Sprintf("BR=$%04X", d.BranchTarget(d.Next()))
	case d.Operand.Mode == cpu.IMM:
		s = fmt.Sprintf("IM=$%02X", d.Value)
	}
	if d.PageCrossed {
		s += " +P"
	}
	if s != "" {
		s += " "
	}
	return s + fmt.Sprintf("%dcy", d.Cycles)
}
