// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/beevik/op65/bus"
)

// An Operand is an instruction operand tagged with its addressing mode.
// Raw holds the operand bytes exactly as encoded in the instruction
// stream: a 16-bit little-endian literal for ABS, ABX, ABY and IND, a
// single byte for IMM, REL, ZPG, ZPX, ZPY, IDX and IDY, and nothing for
// IMP and ACC.
type Operand struct {
	Mode Mode
	Raw  uint16
}

// Absolute returns an operand for $HHLL.
func Absolute(addr uint16) Operand { return Operand{ABS, addr} }

// AbsoluteX returns an operand for $HHLL,X.
func AbsoluteX(addr uint16) Operand { return Operand{ABX, addr} }

// AbsoluteY returns an operand for $HHLL,Y.
func AbsoluteY(addr uint16) Operand { return Operand{ABY, addr} }

// Immediate returns an operand for #$NN.
func Immediate(v byte) Operand { return Operand{IMM, uint16(v)} }

// Implied returns an operand-less implied operand.
func Implied() Operand { return Operand{IMP, 0} }

// Accumulator returns the implied accumulator operand.
func Accumulator() Operand { return Operand{ACC, 0} }

// Indirect returns an operand for ($HHLL).
func Indirect(addr uint16) Operand { return Operand{IND, addr} }

// IndexedIndirect returns an operand for ($LL,X).
func IndexedIndirect(zp byte) Operand { return Operand{IDX, uint16(zp)} }

// IndirectIndexed returns an operand for ($LL),Y.
func IndirectIndexed(zp byte) Operand { return Operand{IDY, uint16(zp)} }

// Relative returns a branch operand with the encoded displacement byte.
func Relative(rel byte) Operand { return Operand{REL, uint16(rel)} }

// ZeroPage returns an operand for $LL.
func ZeroPage(zp byte) Operand { return Operand{ZPG, uint16(zp)} }

// ZeroPageX returns an operand for $LL,X.
func ZeroPageX(zp byte) Operand { return Operand{ZPX, uint16(zp)} }

// ZeroPageY returns an operand for $LL,Y.
func ZeroPageY(zp byte) Operand { return Operand{ZPY, uint16(zp)} }

// Byte returns the low byte of the raw operand.
func (o Operand) Byte() byte {
	return byte(o.Raw)
}

// Offset returns the sign-extended displacement of a relative operand.
func (o Operand) Offset() int8 {
	return int8(o.Raw)
}

// Bytes returns the operand as it appears in the instruction stream.
func (o Operand) Bytes() []byte {
	switch o.Mode.OperandLength() {
	case 1:
		return []byte{byte(o.Raw)}
	case 2:
		return []byte{byte(o.Raw), byte(o.Raw >> 8)}
	}
	return nil
}

func (o Operand) String() string {
	switch o.Mode {
	case IMM:
		return fmt.Sprintf("#$%02X", o.Raw)
	case IMP:
		return ""
	case ACC:
		return "A"
	case REL, ZPG:
		return fmt.Sprintf("$%02X", o.Raw)
	case ZPX:
		return fmt.Sprintf("$%02X,X", o.Raw)
	case ZPY:
		return fmt.Sprintf("$%02X,Y", o.Raw)
	case ABS:
		return fmt.Sprintf("$%04X", o.Raw)
	case ABX:
		return fmt.Sprintf("$%04X,X", o.Raw)
	case ABY:
		return fmt.Sprintf("$%04X,Y", o.Raw)
	case IND:
		return fmt.Sprintf("($%04X)", o.Raw)
	case IDX:
		return fmt.Sprintf("($%02X,X)", o.Raw)
	case IDY:
		return fmt.Sprintf("($%02X),Y", o.Raw)
	}
	return "?"
}

// FetchOperand reads the operand bytes for an instruction of the given
// mode whose opcode is at 'pc'. Bytes are read one at a time in
// ascending order, wrapping at the top of the address space.
func FetchOperand(b bus.Bus, pc uint16, mode Mode) (Operand, error) {
	op := Operand{Mode: mode}
	switch mode.OperandLength() {
	case 1:
		v, err := b.Get(pc + 1)
		if err != nil {
			return Operand{}, err
		}
		op.Raw = uint16(v)
	case 2:
		lo, err := b.Get(pc + 1)
		if err != nil {
			return Operand{}, err
		}
		hi, err := b.Get(pc + 2)
		if err != nil {
			return Operand{}, err
		}
		op.Raw = uint16(lo) | uint16(hi)<<8
	}
	return op, nil
}
