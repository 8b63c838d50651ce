// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "github.com/beevik/op65/bus"

// A Resolution is the outcome of applying an addressing mode to an
// operand.
type Resolution struct {
	Operand     Operand
	Address     uint16 // effective address, if HasAddress
	HasAddress  bool   // the operand refers to memory
	Value       byte   // literal operand of an immediate instruction
	Offset      int8   // signed displacement of a relative instruction
	PageCrossed bool   // indexing crossed a page boundary
}

// ExtraCycles returns the number of cycles the hardware may add for the
// resolved address: 1 if indexing crossed a page boundary.
func (r *Resolution) ExtraCycles() int {
	if r.PageCrossed {
		return 1
	}
	return 0
}

// BranchTarget returns the destination of a relative branch, given the
// address of the instruction following it.
func (r *Resolution) BranchTarget(next uint16) uint16 {
	return next + uint16(int16(r.Offset))
}

// Resolve computes the effective address or literal value of the
// operand 'op' using the index registers in 'reg'. Pointer bytes are
// fetched from 'b'. Any bus error is returned unchanged and the
// resolution is abandoned.
func Resolve(b bus.Bus, reg *Registers, op Operand) (Resolution, error) {
	r := Resolution{Operand: op}

	switch op.Mode {
	case IMM:
		r.Value = op.Byte()

	case IMP, ACC:

	case REL:
		r.Offset = op.Offset()

	case ZPG:
		r.Address, r.HasAddress = uint16(op.Byte()), true

	case ZPX:
		r.Address, r.HasAddress = offsetZeroPage(op.Byte(), reg.X), true

	case ZPY:
		r.Address, r.HasAddress = offsetZeroPage(op.Byte(), reg.Y), true

	case ABS:
		r.Address, r.HasAddress = op.Raw, true

	case ABX:
		r.Address, r.PageCrossed = offsetAddress(op.Raw, reg.X)
		r.HasAddress = true

	case ABY:
		r.Address, r.PageCrossed = offsetAddress(op.Raw, reg.Y)
		r.HasAddress = true

	case IND:
		addr, err := loadPointer(b, op.Raw)
		if err != nil {
			return Resolution{}, err
		}
		r.Address, r.HasAddress = addr, true

	case IDX:
		zp := offsetZeroPage(op.Byte(), reg.X)
		addr, err := loadPointer(b, zp)
		if err != nil {
			return Resolution{}, err
		}
		r.Address, r.HasAddress = addr, true

	case IDY:
		base, err := loadPointer(b, uint16(op.Byte()))
		if err != nil {
			return Resolution{}, err
		}
		r.Address, r.PageCrossed = offsetAddress(base, reg.Y)
		r.HasAddress = true

	default:
		panic("invalid addressing mode")
	}

	return r, nil
}

// Load a 16-bit address from 'addr'. When the address ends in $FF, the
// high byte is read from the start of the same page rather than the
// next page. This reproduces the NMOS JMP ($xxFF) bug, and keeps a
// zero-page pointer at $FF inside page zero.
func loadPointer(b bus.Bus, addr uint16) (uint16, error) {
	if (addr & 0xff) != 0xff {
		return b.GetPointer(addr)
	}
	lo, err := b.Get(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.Get(addr & 0xff00)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Return the offset address 'addr' + 'offset'. If the offset
// crossed a page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset', wrapping within the
// zero page.
func offsetZeroPage(addr byte, offset byte) uint16 {
	return uint16(addr + offset)
}
