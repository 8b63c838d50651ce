// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import "sort"

// The Access bit mask is used to indicate memory access: read and/or write.
type Access int

// Access directions a bank may be activated for.
const (
	Read Access = 1 << iota
	Write

	ReadWrite = Read | Write
)

// A page is a 256-byte chunk of memory.
type page struct {
	read  Bank // memory bank used for this page's reads
	write Bank // memory bank used for this page's writes
	known int  // number of added banks covering this page
}

// SystemMemory represents the current configuration of system memory. It
// may consist of multiple memory banks, each with different address
// ranges and access patterns (e.g, RAM, ROM, I/O ports).
//
// A page that no added bank covers has no mapping and fails with
// OutOfBounds. A page covered only by inactive banks fails with
// Unavailable. A page active for one direction only fails the other
// direction with ReadOnly or WriteOnly.
type SystemMemory struct {
	banks map[Bank]Access
	pages [256]page
}

// NewSystemMemory creates a new system memory object with no banks.
func NewSystemMemory() *SystemMemory {
	return &SystemMemory{
		banks: make(map[Bank]Access),
	}
}

// Return the range of page indices covered by bank b.
func pageRange(b Bank) (first, last int) {
	start, size := b.AddressRange()
	first = int(start) >> 8
	return first, first + size>>8
}

// AddBank adds a memory bank to the set of all known memory banks. The
// bank starts inactive for reads and writes.
func (m *SystemMemory) AddBank(b Bank) {
	if _, ok := m.banks[b]; ok {
		return
	}
	m.banks[b] = 0
	first, last := pageRange(b)
	for i := first; i < last; i++ {
		m.pages[i].known++
	}
}

// RemoveBank removes a memory bank from the set of all known memory banks.
// If it was active for reads or writes, it is deactivated first.
func (m *SystemMemory) RemoveBank(b Bank) {
	active, ok := m.banks[b]
	if !ok {
		return
	}

	if active != 0 {
		m.DeactivateBank(b, active)
	}
	delete(m.banks, b)

	first, last := pageRange(b)
	for i := first; i < last; i++ {
		m.pages[i].known--
	}
}

// ActivateBank activates a memory bank so that it handles all accesses
// to its addresses. Read and write access may be configured independently.
func (m *SystemMemory) ActivateBank(b Bank, access Access) {
	active, ok := m.banks[b]
	if !ok {
		return
	}

	enableReads := (access&Read) != 0 && (active&Read) == 0
	enableWrites := (access&Write) != 0 && (active&Write) == 0
	if !enableReads && !enableWrites {
		return
	}

	m.banks[b] = active | access

	first, last := pageRange(b)
	for i := first; i < last; i++ {
		if enableReads {
			m.pages[i].read = b
		}
		if enableWrites {
			m.pages[i].write = b
		}
	}
}

// DeactivateBank deactivates a memory bank so that it no longer handles
// accesses to its addresses. Read and write access may be configured
// independently.
func (m *SystemMemory) DeactivateBank(b Bank, access Access) {
	active, ok := m.banks[b]
	if !ok {
		return
	}

	disableReads := (access&Read) != 0 && (active&Read) != 0
	disableWrites := (access&Write) != 0 && (active&Write) != 0
	if !disableReads && !disableWrites {
		return
	}

	m.banks[b] = active &^ access

	first, last := pageRange(b)
	for i := first; i < last; i++ {
		if disableReads && m.pages[i].read == b {
			m.pages[i].read = nil
		}
		if disableWrites && m.pages[i].write == b {
			m.pages[i].write = nil
		}
	}
}

// BankInfo describes a bank known to the system memory.
type BankInfo struct {
	Bank   Bank
	Start  uint16
	Size   int
	Active Access
}

// Banks returns every known bank ordered by start address.
func (m *SystemMemory) Banks() []BankInfo {
	var infos []BankInfo
	for b, a := range m.banks {
		start, size := b.AddressRange()
		infos = append(infos, BankInfo{Bank: b, Start: start, Size: size, Active: a})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Start < infos[j].Start
	})
	return infos
}

// Return the bank handling reads of addr, or the error describing why
// there is none.
func (m *SystemMemory) reader(addr uint16) (Bank, error) {
	p := &m.pages[addr>>8]
	switch {
	case p.read != nil:
		return p.read, nil
	case p.write != nil:
		return nil, ErrWriteOnly(addr)
	case p.known > 0:
		return nil, ErrUnavailable(addr)
	default:
		return nil, ErrOutOfBounds()
	}
}

// Return the bank handling writes to addr, or the error describing why
// there is none.
func (m *SystemMemory) writer(addr uint16) (Bank, error) {
	p := &m.pages[addr>>8]
	switch {
	case p.write != nil:
		return p.write, nil
	case p.read != nil:
		return nil, ErrReadOnly(addr)
	case p.known > 0:
		return nil, ErrUnavailable(addr)
	default:
		return nil, ErrOutOfBounds()
	}
}

// Get loads a byte from the requested address and returns it.
func (m *SystemMemory) Get(addr uint16) (byte, error) {
	b, err := m.reader(addr)
	if err != nil {
		return 0, err
	}
	return b.LoadByte(addr)
}

// Set stores a byte to the requested address.
func (m *SystemMemory) Set(addr uint16, v byte) error {
	b, err := m.writer(addr)
	if err != nil {
		return err
	}
	return b.StoreByte(addr, v)
}

// GetPointer loads a 16-bit little-endian address from addr and addr+1.
// The two bytes may live in different banks.
func (m *SystemMemory) GetPointer(addr uint16) (uint16, error) {
	if addr == 0xffff {
		return 0, ErrOutOfBounds()
	}
	lo, err := m.Get(addr)
	if err != nil {
		return 0, err
	}
	hi, err := m.Get(addr + 1)
	if err != nil {
		return 0, err
	}
	return word(lo, hi), nil
}

// GetWindow reads size bytes starting at addr into a fresh buffer. It
// fails on the first inaccessible byte.
func (m *SystemMemory) GetWindow(addr uint16, size uint16) ([]byte, error) {
	if err := checkWindow(addr, int(size)); err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	for i := range buf {
		v, err := m.Get(addr + uint16(i))
		if err != nil {
			return nil, err
		}
		buf[i] = v
	}
	return buf, nil
}

// SetWindow writes data starting at addr. Every target address is
// checked for write access, including by banks that implement
// StoreChecker, before the first byte is stored.
func (m *SystemMemory) SetWindow(addr uint16, data []byte) error {
	if err := checkWindow(addr, len(data)); err != nil {
		return err
	}
	for i := 0; i < len(data); i++ {
		a := addr + uint16(i)
		b, err := m.writer(a)
		if err != nil {
			return err
		}
		if c, ok := b.(StoreChecker); ok {
			if err := c.CanStore(a); err != nil {
				return err
			}
		}
	}
	for i, v := range data {
		if err := m.Set(addr+uint16(i), v); err != nil {
			return err
		}
	}
	return nil
}
