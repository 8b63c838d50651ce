// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// Status holds the processor status bits.
type Status byte

// Bits assigned to the processor status byte
const (
	Carry            Status = 1 << 0 // C
	Zero             Status = 1 << 1 // Z
	InterruptDisable Status = 1 << 2 // I
	Decimal          Status = 1 << 3 // D
	Break            Status = 1 << 4 // B
	Unused           Status = 1 << 5 // pushed as 1
	Overflow         Status = 1 << 6 // V
	Negative         Status = 1 << 7 // N
)

// IsSet returns true if all of the bits in 's' are set.
func (ps Status) IsSet(s Status) bool {
	return ps&s == s
}

// String returns the status in "NV-BDIZC" form, with cleared bits
// shown in lower case.
func (ps Status) String() string {
	const names = "czidbuvn"
	var buf [8]byte
	for i := 0; i < 8; i++ {
		c := names[i]
		if ps&(1<<i) != 0 {
			c -= 'a' - 'A'
		}
		buf[7-i] = c
	}
	return string(buf[:])
}

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	PS Status // processor status bits
}

// Init initializes all registers. A, X, Y = 0. SP = 0xff. PC = 0.
// PS = Unused.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xff
	r.PC = 0
	r.PS = Unused
}

// SetStatus sets the status bits 's' if 'on' is true and clears them
// otherwise.
func (r *Registers) SetStatus(s Status, on bool) {
	if on {
		r.PS |= s
	} else {
		r.PS &^= s
	}
}

// StackAddress returns the memory address the stack pointer refers to.
func (r *Registers) StackAddress() uint16 {
	return 0x100 | uint16(r.SP)
}

func (r Registers) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, r.PS, r.SP, r.PC)
}
