// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an inspection shell for the 6502 decode core.
// A host owns a 64K system memory, a CPU that walks the instruction
// stream without executing it, and a debugger for breakpoints.
//
// Within the host it is possible to load binary images into RAM, map ROM
// images and halt traps, decode instructions against the current index
// registers, disassemble memory, query the opcode table, dump and edit
// memory, manipulate CPU registers, and step through code while watching
// every bus access the decoder makes.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/op65/bus"
	"github.com/beevik/op65/cpu"
	"github.com/beevik/op65/disasm"
	"github.com/beevik/prefixtree/v2"
)

// ErrQuit is returned by RunCommands when the quit command is issued.
var ErrQuit = errors.New("exiting program")

// Opcode mnemonics, looked up by unambiguous prefix.
var mnemonics = prefixtree.New[string]()

func init() {
	for _, name := range cpu.Mnemonics() {
		mnemonics.Add(strings.ToLower(name), name)
	}
}

// A selection is a command looked up in the command tree, along with
// the arguments that followed it.
type selection struct {
	Command *cmd.Command
	Args    []string
}

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles

	displayAll = displayRegisters | displayCycles
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateHalted
	stateError
)

// A Host represents a 6502 decode environment: 64K of system memory, a
// CPU, a debugger, and the tools to inspect them.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	mem         *bus.SystemMemory
	ram         *bus.RAM
	trace       *bus.Trace
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	exprParser  *exprParser
	lastCmd     *selection
	state       state
	settings    *settings
}

// New creates a new host environment with 64K of RAM.
func New() *Host {
	h := &Host{
		state:      stateProcessingCommands,
		settings:   newSettings(),
		exprParser: newExprParser(),
	}

	// Create the system memory, backed by RAM across the whole address
	// space. ROM and trap banks are mapped over it on request.
	h.mem = bus.NewSystemMemory()
	h.ram = bus.NewRAM(0x0000, 0x10000)
	h.mem.AddBank(h.ram)
	h.mem.ActivateBank(h.ram, bus.ReadWrite)

	// The CPU reaches memory through a trace so each step's bus accesses
	// can be displayed.
	h.trace = bus.NewTrace(h.mem)
	h.cpu = cpu.NewCPU(h.trace, nil)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the next command to be entered, and an empty line
// repeats the previous command. RunCommands returns nil when the reader is
// exhausted and ErrQuit when the quit command is issued.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) error {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	defer h.flush()

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		var c selection
		switch {
		case line != "":
			n, args, err := cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}

			switch n := n.(type) {
			case *cmd.Tree:
				n.DisplayHelp(h.output)
				h.flush()
				continue
			case *cmd.Command:
				c = selection{Command: n, Args: args}
			}

		case interactive && h.lastCmd != nil:
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, selection) error)
		if err := handler(h, c); err != nil {
			return err
		}
	}
}

// Break interrupts a stepping CPU.
func (h *Host) Break() {
	h.println()

	if h.state == stateRunning {
		h.displayPC()
	}
	if h.state == stateProcessingCommands {
		h.prompt()
	}
	h.state = stateProcessingCommands
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		h.println(h.pcLine())
	}
}

func (h *Host) displayUsage(c *cmd.Command) {
	c.DisplayUsage(h.output)
	h.flush()
}

func (h *Host) cmdBankList(c selection) error {
	h.println("Range        Kind  Access")
	h.println("-----------  ----  ------")
	for _, b := range h.mem.Banks() {
		h.printf("$%04X-$%04X  %-4s  %s\n", b.Start, int(b.Start)+b.Size-1,
			bankKind(b.Bank), accessString(b.Active))
	}
	return nil
}

func (h *Host) cmdBankROM(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parsePage(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	filename := c.Args[0]
	data, err := bus.ReadFile(addr, filename)
	if err != nil {
		h.printf("Failed to read '%s': %v\n", filepath.Base(filename), err)
		return nil
	}
	if len(data) == 0 {
		h.printf("File '%s' is empty.\n", filepath.Base(filename))
		return nil
	}

	// Banks cover whole pages, so pad the image out to a page boundary.
	size := (len(data) + 0xff) &^ 0xff
	data = append(data, make([]byte, size-len(data))...)

	rom := bus.NewROM(addr, data)
	h.mem.AddBank(rom)
	h.mem.ActivateBank(rom, bus.Read)
	h.printf("Mapped '%s' as ROM at $%04X..$%04X.\n", filepath.Base(filename), addr, int(addr)+size-1)
	return nil
}

func (h *Host) cmdBankTrap(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parsePage(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	size := 0x100
	if len(c.Args) > 1 {
		size, err = h.parseCount(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}
	if size == 0 || size&0xff != 0 || int(addr)+size > 0x10000 {
		h.println("Trap size must be a whole number of pages within the address space.")
		return nil
	}

	trap := bus.NewTrap(addr, size)
	h.mem.AddBank(trap)
	h.mem.ActivateBank(trap, bus.ReadWrite)
	h.printf("Trap mapped at $%04X..$%04X.\n", addr, int(addr)+size-1)
	return nil
}

func (h *Host) cmdBankRemove(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	for _, b := range h.mem.Banks() {
		if b.Start == addr && b.Bank != bus.Bank(h.ram) {
			h.mem.RemoveBank(b.Bank)
			h.remapBanks()
			h.printf("%s bank at $%04X removed.\n", bankKind(b.Bank), addr)
			return nil
		}
	}

	h.printf("No removable bank starts at $%04X.\n", addr)
	return nil
}

// Restore page routing after a bank is removed. RAM is remapped first so
// that it shows through wherever no other bank remains.
func (h *Host) remapBanks() {
	banks := h.mem.Banks()
	h.mem.DeactivateBank(h.ram, bus.ReadWrite)
	h.mem.ActivateBank(h.ram, bus.ReadWrite)
	for _, b := range banks {
		if b.Bank == bus.Bank(h.ram) {
			continue
		}
		h.mem.DeactivateBank(b.Bank, b.Active)
		h.mem.ActivateBank(b.Bank, b.Active)
	}
}

func (h *Host) cmdBreakpointList(c selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c selection) error {
	b := h.selectBreakpoint(c)
	if b == nil {
		return nil
	}

	h.debugger.RemoveBreakpoint(b.Address)
	h.printf("Breakpoint at $%04X removed.\n", b.Address)
	return nil
}

func (h *Host) cmdBreakpointEnable(c selection) error {
	b := h.selectBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = false
	h.printf("Breakpoint at $%04X enabled.\n", b.Address)
	return nil
}

func (h *Host) cmdBreakpointDisable(c selection) error {
	b := h.selectBreakpoint(c)
	if b == nil {
		return nil
	}

	b.Disabled = true
	h.printf("Breakpoint at $%04X disabled.\n", b.Address)
	return nil
}

// Return the breakpoint named by the command's address argument,
// reporting any problem to the user.
func (h *Host) selectBreakpoint(c selection) *cpu.Breakpoint {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
	}
	return b
}

func (h *Host) cmdDecode(c selection) error {
	addr, count, ok := h.parseRange(c, h.settings.NextDecodeAddr, h.settings.DecodeLines)
	if !ok {
		return nil
	}

	decoder := cpu.NewDecoder(h.mem)
	for i := 0; i < count; i++ {
		d, err := decoder.DecodeAt(addr, h.cpu.Reg)
		if err != nil {
			h.printf("%04X-   %v\n", addr, err)
			break
		}
		h.println(h.decodedLine(&d))
		addr = d.Next()
	}

	h.settings.NextDecodeAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("$%X", count)}
	return nil
}

func (h *Host) cmdDisassemble(c selection) error {
	addr, lines, ok := h.parseRange(c, h.settings.NextDisasmAddr, h.settings.DisasmLines)
	if !ok {
		return nil
	}

	for i := 0; i < lines; i++ {
		str, next, err := h.disassemble(addr, 0)
		if err != nil {
			h.printf("%04X-   %v\n", addr, err)
			break
		}
		h.println(str)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("$%X", lines)}
	return nil
}

// Parse the optional '[<address>] [<count>]' arguments shared by the
// listing commands. An address of "$" continues from 'next'.
func (h *Host) parseRange(c selection, next uint16, count int) (addr uint16, n int, ok bool) {
	addr = next
	if len(c.Args) > 0 && c.Args[0] != "$" {
		a, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return 0, 0, false
		}
		addr = a
	}

	n = count
	if len(c.Args) > 1 {
		v, err := h.parseCount(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return 0, 0, false
		}
		n = v
	}
	return addr, n, true
}

func (h *Host) cmdEvaluate(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	v, err := h.parseExpr(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if v >= 0 && v <= 0xffff {
		h.printf("$%04X (%d)\n", v, v)
	} else {
		h.printf("%s (%d)\n", valueString(int(v)), v)
	}
	return nil
}

func (h *Host) cmdHelp(c selection) error {
	if err := cmds.GetHelp(h.output, c.Args); err != nil {
		h.printf("%v.\n", err)
	}
	h.flush()
	return nil
}

func (h *Host) cmdLoad(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	filename := c.Args[0]
	if filepath.Ext(filename) == "" {
		filename += ".bin"
	}

	addr, err := h.parseAddr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	n, err := bus.LoadFile(h.mem, addr, filename)
	if err != nil {
		h.printf("Failed to load '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	h.printf("Loaded '%s' to $%04X..$%04X\n", filepath.Base(filename), addr, int(addr)+n-1)
	h.cpu.SetPC(addr)
	h.settings.NextDisasmAddr = addr
	h.settings.NextDecodeAddr = addr
	return nil
}

func (h *Host) cmdMemoryDump(c selection) error {
	addr, bytes, ok := h.parseRange(c, h.settings.NextMemDumpAddr, h.settings.MemDumpBytes)
	if !ok {
		return nil
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + uint16(bytes)
	h.lastCmd.Args = []string{"$", fmt.Sprintf("$%X", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	data := make([]byte, 0, len(c.Args)-1)
	for _, s := range c.Args[1:] {
		v, err := h.parseByte(s)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		data = append(data, v)
	}

	if err := h.mem.SetWindow(addr, data); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Stored %d byte(s) at $%04X.\n", len(data), addr)
	return nil
}

func (h *Host) cmdMemoryCopy(c selection) error {
	if len(c.Args) < 3 {
		h.displayUsage(c.Command)
		return nil
	}

	var addr [3]uint16
	for i := range addr {
		a, err := h.parseAddr(c.Args[i])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr[i] = a
	}
	dst, begin, end := addr[0], addr[1], addr[2]

	if end < begin || end-begin == 0xffff {
		h.println("Invalid source address range.")
		return nil
	}
	size := end - begin + 1

	src, err := h.mem.GetWindow(begin, size)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if err := h.mem.SetWindow(dst, slices.Clone(src)); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Copied $%04X bytes to $%04X.\n", size, dst)
	return nil
}

func (h *Host) cmdOpcode(c selection) error {
	if len(c.Args) < 1 || c.Args[0] == "" {
		h.displayUsage(c.Command)
		return nil
	}

	var insts []*cpu.Instruction
	arg := c.Args[0]
	switch {
	case arg[0] == '$' || (arg[0] >= '0' && arg[0] <= '9'):
		v, err := h.parseByte(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		insts = []*cpu.Instruction{cpu.Lookup(v)}

	default:
		prefix := strings.ToLower(arg)
		name, err := mnemonics.FindValue(prefix)
		switch err {
		case nil:
			insts = cpu.Instructions(name)
		case prefixtree.ErrPrefixAmbiguous:
			keys := mnemonics.FindKeys(prefix)
			h.printf("Mnemonic is ambiguous: %s\n", strings.ToUpper(strings.Join(keys, " ")))
			return nil
		default:
			h.printf("Unknown mnemonic '%s'.\n", arg)
			return nil
		}
	}

	h.println("Op   Name Mode            Len Cyc Notes")
	h.println("---  ---- --------------- --- --- -----")
	for _, inst := range insts {
		cycles := fmt.Sprintf("%d", inst.Cycles)
		if inst.BPCycles > 0 {
			cycles += "+"
		}
		var notes []string
		if inst.Undocumented {
			notes = append(notes, "undocumented")
		}
		if inst.Halts {
			notes = append(notes, "halts")
		}
		line := fmt.Sprintf("$%02X  %-4s %-15v %3d %-3s %s",
			inst.Opcode, inst.Name, inst.Mode, inst.Length, cycles, strings.Join(notes, ","))
		h.println(strings.TrimRight(line, " "))
	}
	return nil
}

func (h *Host) cmdQuit(c selection) error {
	return ErrQuit
}

func (h *Host) cmdRegister(c selection) error {
	if len(c.Args) == 0 {
		h.println(h.pcLine())
		return nil
	}
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

	var flag cpu.Status
	switch key {
	case "n", "negative", "sign":
		flag = cpu.Negative
	case "v", "overflow":
		flag = cpu.Overflow
	case "b", "break":
		flag = cpu.Break
	case "d", "decimal":
		flag = cpu.Decimal
	case "i", "interrupt":
		flag = cpu.InterruptDisable
	case "z", "zero":
		flag = cpu.Zero
	case "c", "carry":
		flag = cpu.Carry
	}
	if flag != 0 {
		on, err := stringToBool(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.Reg.SetStatus(flag, on)
		h.printf("Status flag %s set to %v.\n", strings.ToUpper(key), on)
		return nil
	}

	switch key {
	case "a", "x", "y", "sp":
		v, err := h.parseValue(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if v < -0x80 || v > 0xff {
			h.printf("Value %s does not fit in register %s.\n", valueString(v), strings.ToUpper(key))
			return nil
		}
		switch key {
		case "a":
			h.cpu.Reg.A = byte(v)
		case "x":
			h.cpu.Reg.X = byte(v)
		case "y":
			h.cpu.Reg.Y = byte(v)
		case "sp":
			h.cpu.Reg.SP = byte(v)
		}
		h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))

	case ".", "pc":
		addr, err := h.parseAddr(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(addr)
		h.settings.NextDisasmAddr = addr
		h.settings.NextDecodeAddr = addr
		h.printf("Register PC set to $%04X.\n", addr)

	default:
		h.printf("Unknown register '%s'.\n", c.Args[0])
	}
	return nil
}

func (h *Host) cmdReset(c selection) error {
	pc := h.cpu.Reg.PC
	if len(c.Args) > 0 {
		a, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		pc = a
	}

	h.cpu.Reset(pc)
	h.cpu.Cycles = 0
	h.settings.NextDisasmAddr = pc
	h.settings.NextDecodeAddr = pc
	h.printf("CPU reset with PC=$%04X.\n", pc)
	return nil
}

func (h *Host) cmdSet(c selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c.Command)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")

		kind, err := h.settings.Kind(key)
		if err == nil {
			switch kind {
			case reflect.Bool:
				var v bool
				v, err = stringToBool(value)
				if err == nil {
					err = h.settings.Set(key, v)
				}
			default:
				var v int
				v, err = h.parseValue(value)
				if err == nil {
					err = h.settings.Set(key, v)
				}
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) cmdStep(c selection) error {
	// Parse the number of steps.
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseCount(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		count = n
	}

	// Step the CPU count times.
	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		d := h.step()
		if d != nil {
			switch {
			case i == h.settings.MaxStepLines:
				h.println("...")
			case i < h.settings.MaxStepLines:
				h.println(h.decodedLine(d))
			}
		}
		h.displayTrace()

		switch {
		case d != nil && d.Halts():
			h.printf("CPU halted by %s at $%04X.\n", d.Name(), d.PC)
			h.state = stateHalted
		case h.state == stateBreakpoint:
			h.printf("Breakpoint hit at $%04X.\n", h.cpu.Reg.PC)
		}
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.settings.NextDecodeAddr = h.cpu.Reg.PC
	return nil
}

// Step the CPU by one instruction. Return the decoded instruction, or nil
// if the CPU could not step.
func (h *Host) step() *cpu.Decoded {
	pc := h.cpu.Reg.PC
	d, err := h.cpu.Step()
	switch {
	case err != nil:
		h.printf("%04X-   %v\n", pc, err)
		h.state = stateError
		return nil
	case d == nil:
		h.println("CPU is halted. Use reset to continue.")
		h.state = stateHalted
		return nil
	}
	return d
}

// Display, then discard, the bus accesses recorded since the last call.
func (h *Host) displayTrace() {
	if h.settings.TraceBus {
		for _, a := range h.trace.Accesses() {
			h.printf("        %v\n", a)
		}
	}
	h.trace.Reset()
}

func (h *Host) onBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	if h.state == stateRunning {
		h.state = stateBreakpoint
	}
}

// Resolve an identifier appearing in an expression.
func (h *Host) resolveIdentifier(s string) (int64, error) {
	switch strings.ToLower(s) {
	case "a":
		return int64(h.cpu.Reg.A), nil
	case "x":
		return int64(h.cpu.Reg.X), nil
	case "y":
		return int64(h.cpu.Reg.Y), nil
	case "sp":
		return int64(h.cpu.Reg.SP) | 0x0100, nil
	case ".", "pc":
		return int64(h.cpu.Reg.PC), nil
	}
	return 0, fmt.Errorf("identifier '%s' not found", s)
}

func (h *Host) parseExpr(expr string) (int64, error) {
	h.exprParser.hexMode = h.settings.HexMode
	return h.exprParser.Parse(expr, h.resolveIdentifier)
}

// Parse an expression whose value must fit in an int.
func (h *Host) parseValue(s string) (int, error) {
	v, err := h.parseExpr(s)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("value '%s' is out of range", s)
	}
	return int(v), nil
}

// Parse a non-negative count of lines, bytes or steps.
func (h *Host) parseCount(s string) (int, error) {
	v, err := h.parseValue(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("count '%s' is negative", s)
	}
	return v, nil
}

// Parse a 16-bit address. Negative values down to -$10000 wrap around
// the top of the address space.
func (h *Host) parseAddr(s string) (uint16, error) {
	v, err := h.parseExpr(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v += 0x10000
	}
	if v < 0 || v > 0xffff {
		return 0, fmt.Errorf("address '%s' is out of range", s)
	}
	return uint16(v), nil
}

// Parse a byte value. Negative values down to -$80 are two's complement.
func (h *Host) parseByte(s string) (byte, error) {
	v, err := h.parseExpr(s)
	if err != nil {
		return 0, err
	}
	if v < -0x80 || v > 0xff {
		return 0, fmt.Errorf("value '%s' is not a byte", s)
	}
	return byte(v), nil
}

func (h *Host) parsePage(s string) (uint16, error) {
	addr, err := h.parseAddr(s)
	if err != nil {
		return 0, err
	}
	if addr&0xff != 0 {
		return 0, fmt.Errorf("address $%04X is not page-aligned", addr)
	}
	return addr, nil
}

// Read up to n bytes of code starting at addr, stopping at the first
// inaccessible byte.
func (h *Host) codeBytes(addr uint16, n int) []byte {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		v, err := h.mem.Get(addr + uint16(i))
		if err != nil {
			break
		}
		b = append(b, v)
	}
	return b
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16, err error) {
	var line string
	line, next, err = disasm.Disassemble(h.mem, addr)
	if err != nil {
		return "", addr, err
	}

	b := h.codeBytes(addr, int(next-addr))
	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)

	if (flags & displayRegisters) != 0 {
		str += " " + disasm.RegisterString(&h.cpu.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.cpu.Cycles)
	}

	return str, next, nil
}

// Return the disassembly line for the program counter, including the
// register contents and cycle count.
func (h *Host) pcLine() string {
	pc := h.cpu.Reg.PC
	str, _, err := h.disassemble(pc, displayAll)
	if err != nil {
		str = fmt.Sprintf("%04X-   %-27s %s C=%d", pc, "??",
			disasm.RegisterString(&h.cpu.Reg), h.cpu.Cycles)
	}
	return str
}

// Return the listing line for a decoded instruction, followed by what its
// operand resolved to.
func (h *Host) decodedLine(d *cpu.Decoded) string {
	str, _, err := h.disassemble(d.PC, 0)
	if err != nil {
		str = fmt.Sprintf("%04X-   %-8s    %-15s", d.PC, "", d.String())
	}
	return str + " " + disasm.ResolvedString(d)
}

func (h *Host) dumpMemory(addr0 uint16, bytes int) {
	if bytes <= 0 {
		return
	}

	addr1 := addr0 + uint16(bytes-1)
	if addr1 < addr0 || bytes > 0x10000 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Store the byte at a into the hex and character columns.
	put := func(a uint16, c1, c2 int) {
		m, err := h.mem.Get(a)
		if err != nil {
			buf[c1], buf[c1+1], buf[c2] = '-', '-', ' '
			return
		}
		byteToBuf(m, buf[c1:c1+2])
		buf[c2] = toPrintableChar(m)
	}

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			put(uint16(a), c1, c2)
		}
		h.println(strings.TrimRight(string(buf), " "))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	for r := start; r < stop; r += 8 {
		addrToBuf(uint16(r), buf[0:4])
		for a, c1, c2 := r, 6, 32; c1 < 29; a, c1, c2 = a+1, c1+3, c2+1 {
			if a >= uint32(addr0) && a <= uint32(addr1) {
				put(uint16(a), c1, c2)
			} else {
				buf[c1], buf[c1+1], buf[c2] = ' ', ' ', ' '
			}
		}
		h.println(strings.TrimRight(string(buf), " "))
	}
}

func bankKind(b bus.Bank) string {
	switch b.(type) {
	case *bus.RAM:
		return "RAM"
	case *bus.ROM:
		return "ROM"
	case *bus.Port:
		return "Port"
	case *bus.Trap:
		return "Trap"
	default:
		return "?"
	}
}

func accessString(a bus.Access) string {
	b := []byte("--")
	if a&bus.Read != 0 {
		b[0] = 'r'
	}
	if a&bus.Write != 0 {
		b[1] = 'w'
	}
	return string(b)
}
