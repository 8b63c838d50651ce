// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

// A Bank represents a region of memory. This interface is used for
// every type of memory including RAM, ROM, I/O and debug traps. Bank
// addresses passed to LoadByte and StoreByte are absolute.
type Bank interface {
	AddressRange() (start uint16, size int)
	LoadByte(addr uint16) (byte, error)
	StoreByte(addr uint16, v byte) error
}

// A StoreChecker is a Bank that can report, without side effects,
// whether a store to addr would fail. SystemMemory uses it to validate
// a whole window before writing any of it.
type StoreChecker interface {
	CanStore(addr uint16) error
}

// Panic unless a bank of 'size' bytes at 'addr' is page-aligned and
// fits in the 64K address space.
func checkBank(kind string, addr uint16, size int) {
	if int(addr)+size > 0x10000 {
		panic(kind + " address space exceeds 64K")
	}
	if addr&0xff != 0 || size&0xff != 0 {
		panic(kind + " must start on and span whole 256-byte pages")
	}
}

// RAM represents a random-access memory bank that can be read and written.
type RAM struct {
	start uint16
	buf   []byte
}

// NewRAM creates a new RAM memory bank of the requested size. Its
// contents are initialized to zeroes.
func NewRAM(addr uint16, size int) *RAM {
	checkBank("RAM", addr, size)
	return &RAM{
		start: addr,
		buf:   make([]byte, size),
	}
}

// AddressRange returns the range of addresses in the RAM bank.
func (r *RAM) AddressRange() (start uint16, size int) {
	return r.start, len(r.buf)
}

// LoadByte returns the value of a byte of memory at the requested address.
func (r *RAM) LoadByte(addr uint16) (byte, error) {
	return r.buf[addr-r.start], nil
}

// StoreByte stores a byte value at the requested address.
func (r *RAM) StoreByte(addr uint16, v byte) error {
	r.buf[addr-r.start] = v
	return nil
}

// ROM represents a bank of read-only memory.
type ROM struct {
	start uint16
	buf   []byte
}

// NewROM creates a new ROM memory bank initialized with the contents of the
// provided buffer.
func NewROM(addr uint16, b []byte) *ROM {
	checkBank("ROM", addr, len(b))
	rom := &ROM{
		start: addr,
		buf:   make([]byte, len(b)),
	}
	copy(rom.buf, b)
	return rom
}

// AddressRange returns the range of addresses in the ROM bank.
func (r *ROM) AddressRange() (start uint16, size int) {
	return r.start, len(r.buf)
}

// LoadByte returns the value of a byte of memory at the requested address.
func (r *ROM) LoadByte(addr uint16) (byte, error) {
	return r.buf[addr-r.start], nil
}

// StoreByte always fails for ROM.
func (r *ROM) StoreByte(addr uint16, v byte) error {
	return ErrReadOnly(addr)
}

// CanStore always fails for ROM.
func (r *ROM) CanStore(addr uint16) error {
	return ErrReadOnly(addr)
}

// A Port is a memory-mapped I/O device occupying one or more pages. A
// port without a Read callback is write-only; one without a Write
// callback is read-only. Callbacks may have side effects, such as a
// status read clearing a flag.
type Port struct {
	Start uint16
	Size  int
	Read  func(addr uint16) (byte, error)
	Write func(addr uint16, v byte) error
}

// NewPort creates an I/O port bank covering size bytes at addr.
func NewPort(addr uint16, size int, read func(uint16) (byte, error), write func(uint16, byte) error) *Port {
	checkBank("port", addr, size)
	return &Port{Start: addr, Size: size, Read: read, Write: write}
}

// AddressRange returns the range of addresses decoded by the port.
func (p *Port) AddressRange() (start uint16, size int) {
	return p.Start, p.Size
}

// LoadByte reads from the device.
func (p *Port) LoadByte(addr uint16) (byte, error) {
	if p.Read == nil {
		return 0, ErrWriteOnly(addr)
	}
	return p.Read(addr)
}

// StoreByte writes to the device.
func (p *Port) StoreByte(addr uint16, v byte) error {
	if p.Write == nil {
		return ErrReadOnly(addr)
	}
	return p.Write(addr, v)
}

// CanStore fails for a port without a Write callback. Ports with one
// are assumed to accept the store.
func (p *Port) CanStore(addr uint16) error {
	if p.Write == nil {
		return ErrReadOnly(addr)
	}
	return nil
}

// A Trap is a region where any access halts the processor, typically
// used as a debug trap.
type Trap struct {
	start uint16
	size  int
}

// NewTrap creates a trap bank covering size bytes at addr.
func NewTrap(addr uint16, size int) *Trap {
	checkBank("trap", addr, size)
	return &Trap{start: addr, size: size}
}

// AddressRange returns the range of trapped addresses.
func (t *Trap) AddressRange() (start uint16, size int) {
	return t.start, t.size
}

// LoadByte always fails with Halt.
func (t *Trap) LoadByte(addr uint16) (byte, error) {
	return 0, ErrHalt(addr)
}

// StoreByte always fails with Halt.
func (t *Trap) StoreByte(addr uint16, v byte) error {
	return ErrHalt(addr)
}

// CanStore always fails with Halt.
func (t *Trap) CanStore(addr uint16) error {
	return ErrHalt(addr)
}
