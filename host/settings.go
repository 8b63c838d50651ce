// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

type settings struct {
	HexMode         bool   `doc:"hexadecimal input mode"`
	TraceBus        bool   `doc:"show bus accesses made by each step"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump"`
	DisasmLines     int    `doc:"default number of lines to disassemble"`
	DecodeLines     int    `doc:"default number of instructions to decode"`
	MaxStepLines    int    `doc:"max lines to display when stepping"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextDecodeAddr  uint16 `doc:"address of next decode"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
}

func newSettings() *settings {
	return &settings{
		HexMode:      false,
		TraceBus:     false,
		MemDumpBytes: 64,
		DisasmLines:  10,
		DecodeLines:  10,
		MaxStepLines: 20,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Find the settings field matching a name or unambiguous name prefix.
func lookupSetting(key string) (*settingsField, error) {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	switch err {
	case nil:
		return f, nil
	case prefixtree.ErrPrefixAmbiguous:
		return nil, fmt.Errorf("setting '%s' is ambiguous", key)
	default:
		return nil, fmt.Errorf("setting '%s' not found", key)
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var s string
		switch f.kind {
		case reflect.Uint16:
			s = fmt.Sprintf("    %-16s $%04X", f.name, uint16(v.Uint()))
		default:
			s = fmt.Sprintf("    %-16s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-28s (%s)\n", s, f.doc)
	}
}

func (s *settings) Kind(key string) (reflect.Kind, error) {
	f, err := lookupSetting(key)
	if err != nil {
		return reflect.Invalid, err
	}
	return f.kind, nil
}

func (s *settings) Set(key string, value any) error {
	f, err := lookupSetting(key)
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if !vIn.Type().ConvertibleTo(f.typ) ||
		(f.kind == reflect.Bool) != (vIn.Kind() == reflect.Bool) {
		return errors.New("invalid type")
	}

	vOut := reflect.ValueOf(s).Elem().Field(f.index)
	vOut.Set(vIn.Convert(f.typ))
	return nil
}
