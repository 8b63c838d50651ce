// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"fmt"
	"sync"
)

// Op identifies the bus operation recorded in a TraceEntry.
type Op byte

// Traced bus operations.
const (
	OpGet Op = iota
	OpSet
	OpGetPointer
	OpGetWindow
	OpSetWindow
)

var opNames = [...]string{"get", "set", "getptr", "getwin", "setwin"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", byte(o))
}

// A TraceEntry records a single operation observed by a Trace.
type TraceEntry struct {
	Op    Op
	Addr  uint16
	Size  int    // bytes covered by the access
	Value uint16 // byte or pointer value read or written, if any
	Err   error
}

func (a TraceEntry) String() string {
	s := fmt.Sprintf("%-6s $%04X", a.Op, a.Addr)
	switch a.Op {
	case OpGet, OpSet:
		s += fmt.Sprintf(" $%02X", a.Value)
	case OpGetPointer:
		s += fmt.Sprintf(" $%04X", a.Value)
	default:
		s += fmt.Sprintf(" [%d]", a.Size)
	}
	if a.Err != nil {
		s += " " + a.Err.Error()
	}
	return s
}

// Trace wraps a Bus and records every access made through it, in the
// order it was made.
type Trace struct {
	Bus Bus

	mu  sync.Mutex
	log []TraceEntry
}

// NewTrace returns a tracing wrapper around b.
func NewTrace(b Bus) *Trace {
	return &Trace{Bus: b}
}

func (t *Trace) record(a TraceEntry) {
	t.mu.Lock()
	t.log = append(t.log, a)
	t.mu.Unlock()
}

// Accesses returns a copy of the access log.
func (t *Trace) Accesses() []TraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TraceEntry(nil), t.log...)
}

// Reset clears the access log.
func (t *Trace) Reset() {
	t.mu.Lock()
	t.log = t.log[:0]
	t.mu.Unlock()
}

// Get reads through to the wrapped bus.
func (t *Trace) Get(addr uint16) (byte, error) {
	v, err := t.Bus.Get(addr)
	t.record(TraceEntry{Op: OpGet, Addr: addr, Size: 1, Value: uint16(v), Err: err})
	return v, err
}

// Set writes through to the wrapped bus.
func (t *Trace) Set(addr uint16, v byte) error {
	err := t.Bus.Set(addr, v)
	t.record(TraceEntry{Op: OpSet, Addr: addr, Size: 1, Value: uint16(v), Err: err})
	return err
}

// GetPointer reads through to the wrapped bus.
func (t *Trace) GetPointer(addr uint16) (uint16, error) {
	v, err := t.Bus.GetPointer(addr)
	t.record(TraceEntry{Op: OpGetPointer, Addr: addr, Size: 2, Value: v, Err: err})
	return v, err
}

// GetWindow reads through to the wrapped bus.
func (t *Trace) GetWindow(addr uint16, size uint16) ([]byte, error) {
	b, err := t.Bus.GetWindow(addr, size)
	t.record(TraceEntry{Op: OpGetWindow, Addr: addr, Size: int(size), Err: err})
	return b, err
}

// SetWindow writes through to the wrapped bus.
func (t *Trace) SetWindow(addr uint16, data []byte) error {
	err := t.Bus.SetWindow(addr, data)
	t.record(TraceEntry{Op: OpSetWindow, Addr: addr, Size: len(data), Err: err})
	return err
}
