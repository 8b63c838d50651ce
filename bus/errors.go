// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the reason a bus access failed.
type ErrorKind byte

// The complete set of bus access failures.
const (
	Unavailable ErrorKind = iota // mapped but currently inaccessible
	ReadOnly                     // write attempted on read-only memory
	WriteOnly                    // read attempted on a write-only port
	Halt                         // access to an address that halts the CPU
	OutOfBounds                  // no mapping defined for the address
)

func (k ErrorKind) String() string {
	switch k {
	case Unavailable:
		return "Unavailable"
	case ReadOnly:
		return "ReadOnly"
	case WriteOnly:
		return "WriteOnly"
	case Halt:
		return "Halt"
	case OutOfBounds:
		return "OutOfBounds"
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(k))
}

// An AddressError is returned by every failing Bus operation. Addr holds
// the offending address for all kinds except OutOfBounds.
type AddressError struct {
	Kind ErrorKind
	Addr uint16
}

func (e *AddressError) Error() string {
	switch e.Kind {
	case Unavailable:
		return fmt.Sprintf("address $%04X unavailable", e.Addr)
	case ReadOnly:
		return fmt.Sprintf("address $%04X is read-only", e.Addr)
	case WriteOnly:
		return fmt.Sprintf("address $%04X is write-only", e.Addr)
	case Halt:
		return fmt.Sprintf("halt requested at address $%04X", e.Addr)
	case OutOfBounds:
		return "address out of bounds"
	}
	return fmt.Sprintf("address error %v at $%04X", e.Kind, e.Addr)
}

// Is reports whether target is an AddressError of the same kind. The
// address is ignored, so errors.Is(err, ErrKindHalt) matches a halt at
// any address.
func (e *AddressError) Is(target error) bool {
	t, ok := target.(*AddressError)
	return ok && t.Kind == e.Kind
}

// HasAddr reports whether Addr carries the offending address.
func (e *AddressError) HasAddr() bool {
	return e.Kind != OutOfBounds
}

// Sentinels for use with errors.Is.
var (
	ErrKindUnavailable = &AddressError{Kind: Unavailable}
	ErrKindReadOnly    = &AddressError{Kind: ReadOnly}
	ErrKindWriteOnly   = &AddressError{Kind: WriteOnly}
	ErrKindHalt        = &AddressError{Kind: Halt}
	ErrKindOutOfBounds = &AddressError{Kind: OutOfBounds}
)

// ErrUnavailable returns an Unavailable error for addr.
func ErrUnavailable(addr uint16) error {
	return &AddressError{Kind: Unavailable, Addr: addr}
}

// ErrReadOnly returns a ReadOnly error for addr.
func ErrReadOnly(addr uint16) error {
	return &AddressError{Kind: ReadOnly, Addr: addr}
}

// ErrWriteOnly returns a WriteOnly error for addr.
func ErrWriteOnly(addr uint16) error {
	return &AddressError{Kind: WriteOnly, Addr: addr}
}

// ErrHalt returns a Halt error for addr.
func ErrHalt(addr uint16) error {
	return &AddressError{Kind: Halt, Addr: addr}
}

// ErrOutOfBounds returns an OutOfBounds error.
func ErrOutOfBounds() error {
	return &AddressError{Kind: OutOfBounds}
}

// KindOf extracts the kind of an AddressError wrapped anywhere in err.
func KindOf(err error) (ErrorKind, bool) {
	var ae *AddressError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}
