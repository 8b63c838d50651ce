// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"cmp"
	"maps"
	"slices"
)

// A Debugger watches a CPU for execution and data breakpoints and
// reports hits to its BreakpointHandler.
type Debugger struct {
	handler BreakpointHandler
	exec    map[uint16]*Breakpoint
	data    map[uint16]*DataBreakpoint
}

// The BreakpointHandler interface should be implemented by any object that
// wishes to receive debugger breakpoint notifications.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// A Breakpoint stops the CPU when the program counter reaches Address.
type Breakpoint struct {
	Address  uint16
	Disabled bool
}

// A DataBreakpoint stops the CPU when an executor stores to Address. A
// conditional data breakpoint only fires when Value is stored.
type DataBreakpoint struct {
	Address     uint16
	Disabled    bool
	Conditional bool
	Value       byte
}

// NewDebugger creates a new CPU debugger.
func NewDebugger(handler BreakpointHandler) *Debugger {
	return &Debugger{
		handler: handler,
		exec:    make(map[uint16]*Breakpoint),
		data:    make(map[uint16]*DataBreakpoint),
	}
}

// GetBreakpoint returns the breakpoint at addr, or nil.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.exec[addr]
}

// GetBreakpoints returns all breakpoints ordered by address.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	return slices.SortedFunc(maps.Values(d.exec), func(a, b *Breakpoint) int {
		return cmp.Compare(a.Address, b.Address)
	})
}

// AddBreakpoint sets an enabled breakpoint at addr, replacing any
// breakpoint already there.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.exec[addr] = b
	return b
}

// RemoveBreakpoint removes the breakpoint at addr.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.exec, addr)
}

// GetDataBreakpoint returns the data breakpoint at addr, or nil.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.data[addr]
}

// GetDataBreakpoints returns all data breakpoints ordered by address.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	return slices.SortedFunc(maps.Values(d.data), func(a, b *DataBreakpoint) int {
		return cmp.Compare(a.Address, b.Address)
	})
}

// AddDataBreakpoint sets an unconditional data breakpoint at addr.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr}
	d.data[addr] = b
	return b
}

// AddConditionalDataBreakpoint sets a data breakpoint at addr that fires
// only when 'value' is stored.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	d.data[addr] = b
	return b
}

// RemoveDataBreakpoint removes the data breakpoint at addr.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.data, addr)
}

func (d *Debugger) onUpdatePC(cpu *CPU, addr uint16) {
	if d.handler == nil {
		return
	}
	if b, ok := d.exec[addr]; ok && !b.Disabled {
		d.handler.OnBreakpoint(cpu, b)
	}
}

func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if d.handler == nil {
		return
	}
	if b, ok := d.data[addr]; ok && !b.Disabled {
		if !b.Conditional || b.Value == v {
			d.handler.OnDataBreakpoint(cpu, b)
		}
	}
}
