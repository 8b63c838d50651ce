// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import "sync"

// synchronized serializes all access to a shared bus.
type synchronized struct {
	mu sync.Mutex
	b  Bus
}

// Synchronized returns a Bus that serializes every operation on b, so
// that several CPUs or peripheral simulations may share it. Windows
// returned by GetWindow are copied, since the caller no longer holds
// the lock while reading them.
func Synchronized(b Bus) Bus {
	return &synchronized{b: b}
}

func (s *synchronized) Get(addr uint16) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Get(addr)
}

func (s *synchronized) Set(addr uint16, v byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Set(addr, v)
}

func (s *synchronized) GetPointer(addr uint16) (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.GetPointer(addr)
}

func (s *synchronized) GetWindow(addr uint16, size uint16) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.b.GetWindow(addr, size)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), w...), nil
}

func (s *synchronized) SetWindow(addr uint16, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.SetWindow(addr, data)
}
