// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus defines the memory bus through which a 6502 reaches its
// 64K address space, together with the address error taxonomy and a
// handful of backing implementations: a flat RAM image, a page-routed
// system memory built from RAM, ROM, I/O port and trap banks, and
// wrappers for tracing and serializing access.
//
// Every operation reports failure through an *AddressError and never
// retries. Reads may have side effects on the device behind an address,
// so callers must not assume they are repeatable.
package bus

// The Bus interface presents the address space to the CPU. All memory
// accesses made while decoding an instruction go through it.
type Bus interface {
	// Get reads the byte at addr.
	Get(addr uint16) (byte, error)

	// Set writes v to addr.
	Set(addr uint16, v byte) error

	// GetPointer reads the little-endian word stored at addr and addr+1.
	// It never wraps across the top of the address space: a pointer
	// read at $FFFF fails with OutOfBounds. Page and zero-page wrapping
	// are the caller's business.
	GetPointer(addr uint16) (uint16, error)

	// GetWindow returns size bytes starting at addr. The slice is
	// borrowed and must not be retained or modified by the caller.
	GetWindow(addr uint16, size uint16) ([]byte, error)

	// SetWindow writes data starting at addr.
	SetWindow(addr uint16, data []byte) error
}

// Return an OutOfBounds error if a window of 'size' bytes starting at
// 'addr' runs past the top of the address space.
func checkWindow(addr uint16, size int) error {
	if int(addr)+size > 0x10000 {
		return ErrOutOfBounds()
	}
	return nil
}

// Compose a little-endian 16-bit value.
func word(lo, hi byte) uint16 {
	return uint16(lo) | uint16(hi)<<8
}
