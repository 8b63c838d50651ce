// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer of RAM.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// Get loads a single byte from the address and returns it.
func (m *FlatMemory) Get(addr uint16) (byte, error) {
	return m.b[addr], nil
}

// Set stores a byte at the requested address.
func (m *FlatMemory) Set(addr uint16, v byte) error {
	m.b[addr] = v
	return nil
}

// GetPointer loads a 16-bit address value from addr and addr+1.
func (m *FlatMemory) GetPointer(addr uint16) (uint16, error) {
	if addr == 0xffff {
		return 0, ErrOutOfBounds()
	}
	return word(m.b[addr], m.b[addr+1]), nil
}

// GetWindow returns a slice of the memory image.
func (m *FlatMemory) GetWindow(addr uint16, size uint16) ([]byte, error) {
	if err := checkWindow(addr, int(size)); err != nil {
		return nil, err
	}
	return m.b[int(addr) : int(addr)+int(size) : int(addr)+int(size)], nil
}

// SetWindow stores multiple bytes to the requested address.
func (m *FlatMemory) SetWindow(addr uint16, data []byte) error {
	if err := checkWindow(addr, len(data)); err != nil {
		return err
	}
	copy(m.b[addr:], data)
	return nil
}
