// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

var modeNames = [...]string{
	"Immediate",
	"Implied",
	"Relative",
	"ZeroPage",
	"ZeroPageX",
	"ZeroPageY",
	"Absolute",
	"AbsoluteX",
	"AbsoluteY",
	"Indirect",
	"IndexedIndirect",
	"IndirectIndexed",
	"Accumulator",
}

var modeOperandLength = [...]byte{
	1, // IMM
	0, // IMP
	1, // REL
	1, // ZPG
	1, // ZPX
	1, // ZPY
	2, // ABS
	2, // ABX
	2, // ABY
	2, // IND
	1, // IDX
	1, // IDY
	0, // ACC
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// OperandLength returns the number of operand bytes that follow the
// opcode in this addressing mode.
func (m Mode) OperandLength() int {
	return int(modeOperandLength[m])
}

// HasAddress returns true if the mode resolves to an effective address.
func (m Mode) HasAddress() bool {
	switch m {
	case IMM, IMP, REL, ACC:
		return false
	}
	return true
}
