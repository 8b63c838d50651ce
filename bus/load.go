// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadReader copies everything readable from r onto the bus starting at
// address 'addr'. It returns the number of bytes stored.
func LoadReader(b Bus, addr uint16, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "reading image")
	}
	if err := b.SetWindow(addr, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// LoadFile loads binary data from the file at 'filename' onto the bus
// starting at address 'addr'.
func LoadFile(b Bus, addr uint16, filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer file.Close()

	return LoadReader(b, addr, file)
}

// ReadFile returns the contents of a binary image file, checking that
// it fits in the address space when placed at 'addr'.
func ReadFile(addr uint16, filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := checkWindow(addr, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}
