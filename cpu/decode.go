// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/beevik/op65/bus"
)

// Decoded is a fully resolved instruction, ready to be handed to an
// instruction executor.
type Decoded struct {
	PC   uint16       // address of the opcode
	Inst *Instruction // dispatch table entry
	Resolution
	Cycles int // base cycles plus any page-crossing penalty
}

// Name returns the instruction mnemonic.
func (d *Decoded) Name() string {
	return d.Inst.Name
}

// Length returns the instruction length in bytes.
func (d *Decoded) Length() int {
	return int(d.Inst.Length)
}

// Next returns the address of the following instruction.
func (d *Decoded) Next() uint16 {
	return d.PC + uint16(d.Inst.Length)
}

// Halts returns true if the instruction jams the processor.
func (d *Decoded) Halts() bool {
	return d.Inst.Halts
}

func (d *Decoded) String() string {
	s := d.Inst.Name
	if o := d.Operand.String(); o != "" {
		s += " " + o
	}
	switch {
	case d.HasAddress:
		s += fmt.Sprintf(" -> $%04X", d.Address)
	case d.Operand.Mode == REL:
		s += fmt.Sprintf(" -> $%04X", d.BranchTarget(d.Next()))
	}
	return s
}

// A Decoder turns the byte stream on a bus into resolved instructions.
// It only ever reads from the bus.
type Decoder struct {
	Bus bus.Bus
}

// NewDecoder creates a decoder reading from bus 'b'.
func NewDecoder(b bus.Bus) *Decoder {
	return &Decoder{Bus: b}
}

// Decode decodes the instruction at the program counter in 'reg'. The
// registers are taken by value; decoding never changes them.
func (d *Decoder) Decode(reg Registers) (Decoded, error) {
	return d.DecodeAt(reg.PC, reg)
}

// DecodeAt decodes the instruction at address 'pc', using the index
// registers in 'reg' to resolve its operand. Bytes are read in order:
// opcode, operand bytes, then pointer bytes. The first bus error ends
// decoding and is returned as is.
func (d *Decoder) DecodeAt(pc uint16, reg Registers) (Decoded, error) {
	opcode, err := d.Bus.Get(pc)
	if err != nil {
		return Decoded{}, err
	}
	inst := Lookup(opcode)

	op, err := FetchOperand(d.Bus, pc, inst.Mode)
	if err != nil {
		return Decoded{}, err
	}

	r, err := Resolve(d.Bus, &reg, op)
	if err != nil {
		return Decoded{}, err
	}

	cycles := int(inst.Cycles)
	if r.PageCrossed {
		cycles += int(inst.BPCycles)
	}

	return Decoded{
		PC:         pc,
		Inst:       inst,
		Resolution: r,
		Cycles:     cycles,
	}, nil
}
