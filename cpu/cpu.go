// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the decode layer of an NMOS 6502: registers,
// the thirteen addressing modes and their resolution against a bus, the
// complete 256-entry opcode table including undocumented opcodes, and a
// decode step that yields resolved instructions.
//
// Instruction semantics are not implemented here. A CPU hands each
// decoded instruction to an Executor supplied by the caller.
package cpu

import "github.com/beevik/op65/bus"

// An Executor carries out decoded instructions. When Execute is called
// the program counter already points at the following instruction, so
// branches and jumps simply overwrite it. Returning an error stops the
// CPU's current step.
type Executor interface {
	Execute(c *CPU, d *Decoded) error
}

// The ExecutorFunc type is an adapter to allow the use of ordinary
// functions as executors.
type ExecutorFunc func(c *CPU, d *Decoded) error

// Execute calls f(c, d).
func (f ExecutorFunc) Execute(c *CPU, d *Decoded) error {
	return f(c, d)
}

// CPU represents a single 6502 CPU. It contains the bus it decodes from
// and the executor that runs what it decodes.
type CPU struct {
	Reg      Registers // CPU registers
	Bus      bus.Bus   // assigned memory bus
	Cycles   uint64    // total executed CPU cycles
	LastPC   uint16    // program counter of the last decoded instruction
	Halted   bool      // a KIL instruction jammed the processor
	decoder  Decoder
	exec     Executor
	debugger *Debugger
}

// NewCPU creates a 6502 CPU bound to the bus 'b'. If 'exec' is nil the
// CPU only walks the instruction stream, advancing the program counter
// past each decoded instruction.
func NewCPU(b bus.Bus, exec Executor) *CPU {
	cpu := &CPU{
		Bus:     b,
		decoder: Decoder{Bus: b},
		exec:    exec,
	}

	cpu.Reg.Init()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// Decode decodes the instruction at the program counter without
// executing it.
func (cpu *CPU) Decode() (Decoded, error) {
	return cpu.decoder.Decode(cpu.Reg)
}

// Step decodes and executes one instruction. A decode failure leaves
// the registers untouched and returns the bus error. Decoding a KIL
// instruction sets Halted; a halted CPU does nothing until Reset.
func (cpu *CPU) Step() (*Decoded, error) {
	if cpu.Halted {
		return nil, nil
	}

	d, err := cpu.decoder.Decode(cpu.Reg)
	if err != nil {
		return nil, err
	}

	cpu.LastPC = cpu.Reg.PC
	if d.Halts() {
		cpu.Halted = true
		cpu.Cycles += uint64(d.Cycles)
		return &d, nil
	}

	cpu.Reg.PC = d.Next()
	if cpu.exec != nil {
		if err := cpu.exec.Execute(cpu, &d); err != nil {
			return &d, err
		}
	}
	cpu.Cycles += uint64(d.Cycles)

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return &d, nil
}

// Reset clears a halt and reinitializes the registers, leaving the
// program counter at 'pc'.
func (cpu *CPU) Reset(pc uint16) {
	cpu.Reg.Init()
	cpu.Reg.PC = pc
	cpu.Halted = false
}

// StoreByte stores a byte through the bus on behalf of an executor,
// notifying the debugger of the store.
func (cpu *CPU) StoreByte(addr uint16, v byte) error {
	if err := cpu.Bus.Set(addr, v); err != nil {
		return err
	}
	if cpu.debugger != nil {
		cpu.debugger.onDataStore(cpu, addr, v)
	}
	return nil
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU steps an instruction or an executor
// stores a byte through StoreByte.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
}

// DetachDebugger detaches the currently attached debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
}
